// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return NewKeyChainServiceWithParams(1, 64*1024, 4)
}

// NewKeyChainServiceWithParams allows cheaper Argon2id settings, mostly for
// tests. memoryKiB is in kibibytes. The key length is always 32 bytes.
func NewKeyChainServiceWithParams(time, memoryKiB uint32, threads uint8) KeyChainService {
	return &keyChainService{
		argonTime:    time,
		argonMemory:  memoryKiB,
		argonThreads: threads,
		argonKeyLen:  32,
	}
}

// DeriveKey implements [KeyChainService] using Argon2id.
func (k *keyChainService) DeriveKey(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// EncryptData implements [KeyChainService]. A random 12-byte nonce is
// prepended to the AES-256-GCM ciphertext and the blob is base64 encoded
// (standard encoding).
func (k *keyChainService) EncryptData(data any, key []byte) (string, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptData implements [KeyChainService]. A wrong key or a tampered blob
// fails the GCM authentication check and returns ErrDecryptionFailed.
func (k *keyChainService) DecryptData(encryptedB64 string, key []byte, target any) error {
	blob, err := base64.StdEncoding.DecodeString(encryptedB64)
	if err != nil {
		return fmt.Errorf("decode base64: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return ErrCiphertextTooShort
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
