// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

// refreshErrors mean the local state no longer matches the remote. They are
// recovered from by a local resync from scratch.
var refreshErrors = []error{
	ErrBookmarkMappingNotFound,
	ErrContainerChanged,
	ErrDataOutOfSync,
	ErrFailedCreateNativeBookmarks,
	ErrFailedGetNativeBookmarks,
	ErrFailedRemoveNativeBookmarks,
	ErrNativeBookmarkNotFound,
	ErrBookmarkNotFound,
}

// disableErrors stop sync until the user acts.
var disableErrors = []error{
	ErrIncompleteSyncInfo,
	ErrSyncNotFound,
	ErrSyncVersionNotSupported,
	ErrTooManyRequests,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsRefreshError reports whether err is recovered from by a local resync.
func IsRefreshError(err error) bool {
	return isAny(err, refreshErrors)
}

// IsDisableError reports whether err disables sync.
func IsDisableError(err error) bool {
	return isAny(err, disableErrors)
}

// ShouldDisplayDefaultPageOnError reports whether err leaves sync in a state
// where the user should be sent back to the sync settings.
func ShouldDisplayDefaultPageOnError(err error) bool {
	return IsDisableError(err) || errors.Is(err, ErrSyncUncommitted)
}
