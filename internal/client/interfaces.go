// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock -exclude_interfaces=Client

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line args and blocks until it completes.
	Run(ctx context.Context, args []string) error
}

// Coordinator is the daemon as seen from the foreground. It is implemented
// by adapter.CoordinatorClient.
type Coordinator interface {
	SyncBookmarks(ctx context.Context, msg models.SyncBookmarksMessage) (models.SyncBookmarksResponse, error)
	RestoreBookmarks(ctx context.Context, msg models.RestoreBookmarksMessage) (models.SyncBookmarksResponse, error)
	CurrentSync(ctx context.Context) (*models.SyncRequest, error)
	QueueLength(ctx context.Context) (int, error)
	EnableSync(ctx context.Context, msg models.EnableSyncMessage) error
	DisableSync(ctx context.Context) error
	Disconnect(ctx context.Context) error
	CheckForUpdates(ctx context.Context) (bool, error)
	SyncSize(ctx context.Context) (int, error)
	Status(ctx context.Context) (models.StatusResponse, error)
	AppInfo(ctx context.Context) (models.AppBuildInfo, error)

	StatusStreamURL() string
	StatusStreamHeader() http.Header
}

// Connector builds the Coordinator from the configuration file at
// configPath (empty means environment and defaults only).
type Connector func(configPath string) (Coordinator, error)
