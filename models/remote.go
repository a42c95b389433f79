// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateSyncRequest is sent to the remote service to create a new sync.
type CreateSyncRequest struct {
	Version string `json:"version"`
}

// CreateSyncResponse describes a freshly created remote sync.
type CreateSyncResponse struct {
	ID          string `json:"id"`
	LastUpdated string `json:"lastUpdated"`
	Version     string `json:"version"`
}

// LastUpdatedResponse carries the remote modification timestamp of a sync.
type LastUpdatedResponse struct {
	LastUpdated string `json:"lastUpdated"`
}

// VersionResponse carries the schema version the remote payload was written with.
type VersionResponse struct {
	Version string `json:"version"`
}

// GetBookmarksResponse carries the encrypted remote payload.
type GetBookmarksResponse struct {
	Bookmarks   string `json:"bookmarks"`
	LastUpdated string `json:"lastUpdated"`
	Version     string `json:"version"`
}

// UpdateBookmarksRequest replaces the remote payload. LastUpdated is the
// timestamp the client last saw; the service rejects the write when the sync
// changed in the meantime. SyncVersion is set only when the payload schema
// version changes.
type UpdateBookmarksRequest struct {
	ID          string `json:"-"`
	Bookmarks   string `json:"bookmarks"`
	LastUpdated string `json:"lastUpdated,omitempty"`
	SyncVersion string `json:"syncVersion,omitempty"`
}

// UpdateBookmarksResponse carries the new remote modification timestamp.
type UpdateBookmarksResponse struct {
	LastUpdated string `json:"lastUpdated"`
}
