// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// loadSyncInfo returns the stored SyncInfo. With requireComplete it fails
// with app.ErrIncompleteSyncInfo unless both id and password are present.
func loadSyncInfo(ctx context.Context, kv store.KeyValueStore, requireComplete bool) (models.SyncInfo, error) {
	var info models.SyncInfo
	if err := kv.Get(ctx, store.KeySyncInfo, &info); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return info, app.ErrIncompleteSyncInfo
		}
		return info, fmt.Errorf("get sync info: %w", err)
	}
	if info.ID == "" || (requireComplete && !info.Complete()) {
		return info, app.ErrIncompleteSyncInfo
	}
	return info, nil
}

// loadLastUpdated returns the stored remote timestamp, or "" if none.
func loadLastUpdated(ctx context.Context, kv store.KeyValueStore) (string, error) {
	var lastUpdated string
	if err := kv.Get(ctx, store.KeyLastUpdated, &lastUpdated); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("get last updated: %w", err)
	}
	return lastUpdated, nil
}

// sameInstant compares two remote timestamps. Values that are not RFC 3339
// are compared as strings.
func sameInstant(a, b string) bool {
	ta, errA := time.Parse(time.RFC3339Nano, a)
	tb, errB := time.Parse(time.RFC3339Nano, b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ta.Equal(tb)
}
