// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncInfo identifies the remote sync this instance is attached to.
//
// Password is credential material: it is used to derive the payload
// encryption key and must never be persisted outside the active SyncInfo.
type SyncInfo struct {
	ID         string `json:"id,omitempty"`
	Password   string `json:"password,omitempty"`
	Version    string `json:"version,omitempty"`
	ServiceURL string `json:"service_url,omitempty"`
}

// Complete reports whether the info carries everything needed to sync.
func (s SyncInfo) Complete() bool {
	return s.ID != "" && s.Password != ""
}

// WithoutSecrets returns a copy with the password removed.
func (s SyncInfo) WithoutSecrets() SyncInfo {
	s.Password = ""
	return s
}

// Trimmed returns a copy keeping only the service location. It is what
// survives after the remote sync has been removed.
func (s SyncInfo) Trimmed() SyncInfo {
	return SyncInfo{ServiceURL: s.ServiceURL}
}

// RemovedSync is the snapshot saved when the remote sync disappears, so the
// user can recover the last known bookmarks.
type RemovedSync struct {
	Bookmarks   []Bookmark `json:"bookmarks,omitempty"`
	LastUpdated string     `json:"last_updated,omitempty"`
	SyncInfo    SyncInfo   `json:"sync_info"`
}
