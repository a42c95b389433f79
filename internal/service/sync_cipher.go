// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/crypto"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// bookmarkCipher encrypts payloads with a key derived from the password of
// the current sync, salted with the sync id. The derived key is kept until
// the credentials change.
type bookmarkCipher struct {
	store    store.KeyValueStore
	keychain crypto.KeyChainService

	mu          sync.Mutex
	fingerprint string
	key         []byte
}

// NewBookmarkCipher returns a PayloadCipher reading credentials from kv.
func NewBookmarkCipher(kv store.KeyValueStore, keychain crypto.KeyChainService) PayloadCipher {
	return &bookmarkCipher{store: kv, keychain: keychain}
}

func (c *bookmarkCipher) Encrypt(ctx context.Context, tree []models.Bookmark) (string, error) {
	key, err := c.currentKey(ctx)
	if err != nil {
		return "", err
	}
	if tree == nil {
		tree = []models.Bookmark{}
	}
	payload, err := c.keychain.EncryptData(tree, key)
	if err != nil {
		return "", app.Wrap(app.ErrSyncFailed, err)
	}
	return payload, nil
}

// Decrypt returns nil for an empty payload, which is what a freshly created
// sync holds.
func (c *bookmarkCipher) Decrypt(ctx context.Context, payload string) ([]models.Bookmark, error) {
	if payload == "" {
		return nil, nil
	}
	key, err := c.currentKey(ctx)
	if err != nil {
		return nil, err
	}
	var tree []models.Bookmark
	if err := c.keychain.DecryptData(payload, key, &tree); err != nil {
		return nil, app.Wrap(app.ErrSyncFailed, err)
	}
	return tree, nil
}

func (c *bookmarkCipher) currentKey(ctx context.Context) ([]byte, error) {
	info, err := loadSyncInfo(ctx, c.store, true)
	if err != nil {
		return nil, err
	}

	fp := utils.HashString(info.Password, info.ID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.key == nil || c.fingerprint != fp {
		c.key = c.keychain.DeriveKey(info.Password, []byte(info.ID))
		c.fingerprint = fp
	}
	return c.key, nil
}
