// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bookmarks

import "errors"

var (
	// ErrEmptyPath is returned when no bookmarks file is configured.
	ErrEmptyPath = errors.New("bookmarks file path is empty")

	// ErrMalformedFile is returned when the bookmarks file is not a JSON
	// bookmark list.
	ErrMalformedFile = errors.New("malformed bookmarks file")
)
