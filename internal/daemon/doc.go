// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package daemon implements the background owner of the sync engine (syncd).
//
// It wires storage, the remote adapter, the native bookmark tree and the
// engine, then runs the coordinator server and the bookmarks file watcher
// until the process is asked to stop.
package daemon
