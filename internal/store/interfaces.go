// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore persists the durable sync state. Values are encoded with
// msgpack, so any struct with json tags round-trips.
type KeyValueStore interface {
	// Get decodes the value stored under key into dst. It returns
	// ErrKeyNotFound when nothing is stored.
	Get(ctx context.Context, key Key, dst any) error
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key Key, value any) error
	// Remove deletes keys. Missing keys are ignored.
	Remove(ctx context.Context, keys ...Key) error
}
