// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the coordinator transport of the sync daemon.
//
// Foreground contexts (syncctl) hold no queue state: they send command
// messages to POST /api/messages/{command} and follow status changes over
// the websocket at GET /api/status/stream. Every request is signed with the
// shared hash key (HashSHA256 header); request tracing, access logging and
// signature checks are handled here before commands reach the engine.
package http
