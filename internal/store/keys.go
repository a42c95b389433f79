// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Key names a persisted value.
type Key string

const (
	// KeySyncEnabled holds a bool.
	KeySyncEnabled Key = "syncEnabled"
	// KeySyncInfo holds a models.SyncInfo.
	KeySyncInfo Key = "syncInfo"
	// KeyLastUpdated holds the remote modification timestamp seen last.
	KeyLastUpdated Key = "lastUpdated"
	// KeyRemovedSync holds a models.RemovedSync.
	KeyRemovedSync Key = "removedSync"
	// KeyBookmarks holds the encrypted bookmarks payload last committed.
	KeyBookmarks Key = "bookmarks"
	// KeyBookmarksPlain holds the decrypted tree matching KeyBookmarks.
	KeyBookmarksPlain Key = "bookmarksPlain"
)
