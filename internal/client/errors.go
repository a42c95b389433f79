// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrEmptySnapshot is returned by restore when the snapshot file is
	// missing or holds no bookmarks.
	ErrEmptySnapshot = errors.New("snapshot is empty")
	// ErrPasswordRequired is returned by enable when sync details are given
	// without the sync password.
	ErrPasswordRequired = errors.New("sync password is required")
)
