// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the daemon and
// the foreground CLI: context keys, message signing, JSON responses, the
// HTTP client wrapper and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// BackgroundSyncCtxKey marks a context as belonging to a sync started by the
// daemon itself (the update scheduler or the file watcher) rather than by a
// foreground request.
var BackgroundSyncCtxKey = contextKey("backgroundSync")

// WithBackgroundSync returns a context marked as a background sync.
func WithBackgroundSync(ctx context.Context) context.Context {
	return context.WithValue(ctx, BackgroundSyncCtxKey, true)
}

// IsBackgroundSync reports whether ctx was marked with WithBackgroundSync.
func IsBackgroundSync(ctx context.Context) bool {
	v, ok := ctx.Value(BackgroundSyncCtxKey).(bool)
	return ok && v
}
