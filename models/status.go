// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus is the indicator state shown to the user.
type SyncStatus string

const (
	StatusIdleSynced    SyncStatus = "idle-synced"
	StatusIdleNotSynced SyncStatus = "idle-not-synced"
	StatusSyncingLocal  SyncStatus = "syncing-local"
	StatusSyncingRemote SyncStatus = "syncing-remote"
)

// IsSyncing reports whether the status represents an in-flight sync.
func (s SyncStatus) IsSyncing() bool {
	return s == StatusSyncingLocal || s == StatusSyncingRemote
}

// StatusMessage is pushed to foreground contexts whenever the status changes.
type StatusMessage struct {
	Status SyncStatus `json:"status"`
	At     time.Time  `json:"at"`
}
