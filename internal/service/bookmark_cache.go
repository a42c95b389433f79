// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// bookmarkCache holds the last committed tree, both as plaintext (compared
// against local edits) and as the encrypted payload sent to the remote.
type bookmarkCache struct {
	store store.KeyValueStore
}

func newBookmarkCache(kv store.KeyValueStore) *bookmarkCache {
	return &bookmarkCache{store: kv}
}

// Bookmarks returns the cached plaintext tree, or nil when nothing is cached.
func (c *bookmarkCache) Bookmarks(ctx context.Context) ([]models.Bookmark, error) {
	var tree []models.Bookmark
	if err := c.store.Get(ctx, store.KeyBookmarksPlain, &tree); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached bookmarks: %w", err)
	}
	return tree, nil
}

// Encrypted returns the cached payload, or "" when nothing is cached.
func (c *bookmarkCache) Encrypted(ctx context.Context) (string, error) {
	var payload string
	if err := c.store.Get(ctx, store.KeyBookmarks, &payload); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("get cached payload: %w", err)
	}
	return payload, nil
}

// Update replaces both cached forms.
func (c *bookmarkCache) Update(ctx context.Context, tree []models.Bookmark, encrypted string) error {
	if err := c.store.Set(ctx, store.KeyBookmarksPlain, tree); err != nil {
		return fmt.Errorf("cache bookmarks: %w", err)
	}
	if err := c.store.Set(ctx, store.KeyBookmarks, encrypted); err != nil {
		return fmt.Errorf("cache payload: %w", err)
	}
	return nil
}

// Clear drops both cached forms.
func (c *bookmarkCache) Clear(ctx context.Context) error {
	return c.store.Remove(ctx, store.KeyBookmarksPlain, store.KeyBookmarks)
}
