// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the coordinator transport of the sync daemon.
//
// It owns the HTTP server lifecycle: listening on the configured coordinator
// address, serving command messages and the status stream, and shutting down
// gracefully once the surrounding context is cancelled.
package server
