// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
	"strings"
)

// SyncError is a named member of the sync error taxonomy. The name is what
// crosses process boundaries; the receiving side turns it back into the same
// sentinel with FromName.
type SyncError struct {
	name string
	msg  string
}

func (e *SyncError) Error() string {
	return e.msg
}

// Name returns the taxonomy name of the error.
func (e *SyncError) Name() string {
	return e.name
}

var registry = map[string]*SyncError{}

func newSyncError(name, msg string) *SyncError {
	e := &SyncError{name: name, msg: msg}
	registry[name] = e
	return e
}

// Connectivity.
var (
	ErrNetworkConnection = newSyncError("NetworkConnectionError", "remote service is unreachable")
)

// Local state no longer matches the remote; a fresh resync fixes these.
var (
	ErrBookmarkMappingNotFound     = newSyncError("BookmarkMappingNotFoundError", "bookmark mapping not found")
	ErrContainerChanged            = newSyncError("ContainerChangedError", "bookmark container changed")
	ErrDataOutOfSync               = newSyncError("DataOutOfSyncError", "local data is out of sync with remote")
	ErrFailedCreateNativeBookmarks = newSyncError("FailedCreateNativeBookmarksError", "failed to create native bookmarks")
	ErrFailedGetNativeBookmarks    = newSyncError("FailedGetNativeBookmarksError", "failed to read native bookmarks")
	ErrFailedRemoveNativeBookmarks = newSyncError("FailedRemoveNativeBookmarksError", "failed to remove native bookmarks")
	ErrNativeBookmarkNotFound      = newSyncError("NativeBookmarkNotFoundError", "native bookmark not found")
	ErrBookmarkNotFound            = newSyncError("BookmarkNotFoundError", "bookmark not found")
)

// Sync cannot continue without user action.
var (
	ErrIncompleteSyncInfo      = newSyncError("IncompleteSyncInfoError", "sync info is incomplete")
	ErrSyncNotFound            = newSyncError("SyncNotFoundError", "sync not found on remote service")
	ErrSyncVersionNotSupported = newSyncError("SyncVersionNotSupportedError", "sync version is not supported by this client")
	ErrTooManyRequests         = newSyncError("TooManyRequestsError", "too many requests to remote service")
)

// Outcomes.
var (
	ErrSyncFailed      = newSyncError("SyncFailedError", "sync failed")
	ErrSyncUncommitted = newSyncError("SyncUncommittedError", "changes are pending and will be synced when connection is restored")
	ErrSyncDisabled    = newSyncError("SyncDisabledError", "sync is disabled")
	ErrSyncCancelled   = newSyncError("SyncCancelledError", "queued sync was dropped")
)

type wrappedError struct {
	kind  *SyncError
	cause error
}

func (w *wrappedError) Error() string {
	return w.kind.msg + ": " + w.cause.Error()
}

func (w *wrappedError) Unwrap() []error {
	return []error{w.kind, w.cause}
}

// Wrap tags cause with a taxonomy kind. Both kind and cause stay reachable
// through errors.Is and errors.As.
func Wrap(kind *SyncError, cause error) error {
	if cause == nil {
		return kind
	}
	return &wrappedError{kind: kind, cause: cause}
}

// KindOf returns the taxonomy member err belongs to, or nil.
func KindOf(err error) *SyncError {
	var se *SyncError
	if errors.As(err, &se) {
		return se
	}
	return nil
}

// NameOf returns the taxonomy name of err, or "" when err is outside it.
func NameOf(err error) string {
	if kind := KindOf(err); kind != nil {
		return kind.name
	}
	return ""
}

// IsSyncError reports whether err belongs to the taxonomy.
func IsSyncError(err error) bool {
	return KindOf(err) != nil
}

// FromName re-creates the taxonomy member for name. Unknown names become
// ErrSyncFailed.
func FromName(name string) *SyncError {
	if e, ok := registry[name]; ok {
		return e
	}
	return ErrSyncFailed
}

// FromMessage re-creates an error received over the coordinator. message is
// the full text produced on the sending side.
func FromMessage(name, message string) error {
	kind := FromName(name)
	detail := strings.TrimPrefix(message, kind.msg)
	detail = strings.TrimPrefix(detail, ": ")
	if detail == "" {
		return kind
	}
	return fmt.Errorf("%w: %s", kind, detail)
}
