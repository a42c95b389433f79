// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto encrypts the bookmark payload before it leaves the device.
//
// The remote service only ever sees ciphertext:
//
//	key     = DeriveKey(syncPassword, syncID)   Argon2id
//	payload = EncryptData(bookmarks, key)       AES-256-GCM, base64(nonce || ciphertext)
package crypto

// KeyChainService derives payload keys and seals data with them. It knows
// nothing about the network or the store.
type KeyChainService interface {
	// DeriveKey stretches password with salt into a 256-bit key.
	// The same inputs always produce the same key.
	DeriveKey(password string, salt []byte) []byte

	// EncryptData serializes data to JSON and encrypts it with key.
	// Returns a base64-encoded blob (nonce || ciphertext).
	EncryptData(data any, key []byte) (string, error)

	// DecryptData decrypts a blob produced by EncryptData and unmarshals
	// the plaintext into target (same contract as json.Unmarshal).
	DecryptData(encryptedB64 string, key []byte, target any) error
}
