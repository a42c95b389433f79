// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bookmarks holds the native bookmark tree the user edits: a JSON
// file on disk ([FileTree]) and a [Watcher] that turns edits of that file
// into local syncs.
package bookmarks
