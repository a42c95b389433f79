// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer clients of the sync daemon
// and the foreground CLI.
//
// [RemoteService] decouples the sync engine from the remote bookmark
// service; [NewHTTPRemoteService] is its HTTP/REST implementation.
// [CoordinatorClient] is the foreground side of the cross-process message
// channel served by the daemon.
//
// Transport failures are mapped by mapHTTPError into the sync error taxonomy
// of package app, so callers classify them with [errors.Is] regardless of the
// protocol (e.g. 404 becomes app.ErrSyncNotFound, 409 app.ErrDataOutOfSync).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_service_mock.go -package=mock

// RemoteService is the remote bookmark sync API as seen by the engine.
// Payloads are opaque encrypted strings; the service never sees plaintext.
type RemoteService interface {
	// CreateSync registers a new, empty sync written with version and
	// returns its id.
	CreateSync(ctx context.Context, version string) (models.CreateSyncResponse, error)

	// GetLastUpdated returns the modification timestamp of the sync.
	GetLastUpdated(ctx context.Context, syncID string) (string, error)

	// GetVersion returns the schema version the remote payload was last
	// written with.
	GetVersion(ctx context.Context, syncID string) (string, error)

	// GetBookmarks downloads the encrypted payload.
	GetBookmarks(ctx context.Context, syncID string) (models.GetBookmarksResponse, error)

	// UpdateBookmarks replaces the encrypted payload. It returns
	// app.ErrDataOutOfSync (wrapped) when req.LastUpdated is stale.
	UpdateBookmarks(ctx context.Context, req models.UpdateBookmarksRequest) (models.UpdateBookmarksResponse, error)
}
