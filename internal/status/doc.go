// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package status carries the sync status indicator.
//
// The daemon is the only writer: the sync engine reports every transition
// to a [Sink], normally a [Hub] that fans the change out to websocket
// subscribers. Foreground contexts keep a read-only [Mirror] of the last
// pushed value and may render it with a [TerminalSink].
package status
