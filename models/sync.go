// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncType identifies what a queued sync is expected to do.
type SyncType string

const (
	// SyncTypeLocal pushes local bookmark changes to the remote service.
	SyncTypeLocal SyncType = "local"
	// SyncTypeRemote pulls remote changes and merges them into the local tree.
	SyncTypeRemote SyncType = "remote"
	// SyncTypeUpgrade re-writes the remote payload in the current schema version.
	SyncTypeUpgrade SyncType = "upgrade"
	// SyncTypeCancel aborts processing and disables sync.
	SyncTypeCancel SyncType = "cancel"
)

// Valid reports whether t is one of the known sync types.
func (t SyncType) Valid() bool {
	switch t {
	case SyncTypeLocal, SyncTypeRemote, SyncTypeUpgrade, SyncTypeCancel:
		return true
	}
	return false
}

// SyncRequest is a single unit of work held by the sync queue.
//
// ID is assigned by the engine at enqueue time when empty. Bookmarks is an
// optional pre-computed snapshot; when nil providers read the data they need
// themselves.
type SyncRequest struct {
	ID         string      `json:"id,omitempty"`
	Type       SyncType    `json:"type"`
	Bookmarks  []Bookmark  `json:"bookmarks,omitempty"`
	ChangeInfo *ChangeInfo `json:"change_info,omitempty"`
}

// ChangeInfo describes the local change that triggered a sync. It is carried
// for diagnostics only.
type ChangeInfo struct {
	Type   string `json:"type"`
	Source string `json:"source,omitempty"`
}

// ProcessResult is what a sync provider returns for a processed request.
type ProcessResult struct {
	Data         []Bookmark `json:"data,omitempty"`
	UpdateRemote bool       `json:"update_remote"`
}
