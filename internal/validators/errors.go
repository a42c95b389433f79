// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSyncType     = errors.New("invalid sync type")
	ErrUnexpectedBookmarks = errors.New("bookmarks are only accepted with a local sync")
	ErrEmptyBookmarks      = errors.New("bookmarks list cannot be empty")
	ErrInvalidBookmarkURL  = errors.New("invalid bookmark url")
	ErrInvalidServiceURL   = errors.New("invalid service url")
	ErrInvalidVersion      = errors.New("invalid version")
)
