// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageCommand names a coordinator message sent from a foreground context
// to the background owner.
type MessageCommand string

const (
	CommandSyncBookmarks      MessageCommand = "syncBookmarks"
	CommandRestoreBookmarks   MessageCommand = "restoreBookmarks"
	CommandGetCurrentSync     MessageCommand = "getCurrentSync"
	CommandGetSyncQueueLength MessageCommand = "getSyncQueueLength"
	CommandEnableSync         MessageCommand = "enableSync"
	CommandDisableSync        MessageCommand = "disableSync"
	CommandDisconnect         MessageCommand = "disconnect"
	CommandCheckForUpdates    MessageCommand = "checkForUpdates"
	CommandGetSyncSize        MessageCommand = "getSyncSize"
	CommandGetStatus          MessageCommand = "getStatus"
	CommandGetAppInfo         MessageCommand = "getAppInfo"
)

// SyncBookmarksMessage asks the background owner to queue a sync. A nil
// Sync means "check the remote for updates and process the queue".
type SyncBookmarksMessage struct {
	Sync    *SyncRequest `json:"sync,omitempty"`
	RunSync bool         `json:"run_sync"`
}

// SyncBookmarksResponse reports the id assigned to the queued sync.
type SyncBookmarksResponse struct {
	ID     string `json:"id,omitempty"`
	Queued bool   `json:"queued"`
}

// RestoreBookmarksMessage replaces the synced bookmarks with a snapshot.
type RestoreBookmarksMessage struct {
	Bookmarks []Bookmark `json:"bookmarks"`
}

// EnableSyncMessage enables sync. When SyncInfo is set the instance is
// attached to that sync first; an empty ID creates a new remote sync.
type EnableSyncMessage struct {
	SyncInfo *SyncInfo `json:"sync_info,omitempty"`
}

// CurrentSyncResponse carries the in-flight request, if any.
type CurrentSyncResponse struct {
	Sync *SyncRequest `json:"sync,omitempty"`
}

// QueueLengthResponse carries the number of queued requests.
type QueueLengthResponse struct {
	Length int `json:"length"`
}

// UpdatesResponse reports whether the remote sync changed since the last sync.
type UpdatesResponse struct {
	UpdatesAvailable bool `json:"updates_available"`
}

// SyncSizeResponse carries the size in bytes of the encrypted payload.
type SyncSizeResponse struct {
	Size int `json:"size"`
}

// StatusResponse is a point-in-time view of the background owner.
type StatusResponse struct {
	Status      SyncStatus   `json:"status"`
	Enabled     bool         `json:"enabled"`
	QueueLength int          `json:"queue_length"`
	Current     *SyncRequest `json:"current,omitempty"`
}

// ErrorResponse is returned by the coordinator on failure. Error is the
// taxonomy name used to re-create the error on the receiving side.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
