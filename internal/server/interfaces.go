// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for transport servers managed
// by this package.
//
// Implementations block in [Run] until ctx is cancelled or the server fails,
// and release resources in [Shutdown].
type Server interface {
	// Run starts serving requests and blocks until the server stops.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
