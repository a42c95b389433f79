// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package daemon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/bookmarks"
	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/handler"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/server"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
	"github.com/MKhiriev/go-bookmark-sync/internal/status"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/internal/workers"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// App owns every long-lived component of the daemon.
type App struct {
	storages *store.Storages
	services *service.Services
	hub      *status.Hub
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp wires the daemon from cfg. When console is not nil every status
// change is also rendered there.
func NewApp(ctx context.Context, cfg *config.DaemonConfig, buildInfo models.AppBuildInfo, console io.Writer, logger *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	app, err := wire(cfg, storages, buildInfo, console, logger)
	if err != nil {
		return nil, errors.Join(err, storages.Close())
	}

	return app, nil
}

func wire(cfg *config.DaemonConfig, storages *store.Storages, buildInfo models.AppBuildInfo, console io.Writer, logger *logger.Logger) (*App, error) {
	remote, err := adapter.NewHTTPRemoteService(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	tree, err := bookmarks.NewFileTree(cfg.Storage.Bookmarks.FilePath, logger)
	if err != nil {
		return nil, fmt.Errorf("open bookmarks file: %w", err)
	}

	hub := status.NewHub(models.StatusIdleNotSynced, logger)
	var sink status.Sink = hub
	if console != nil {
		sink = status.Multi(hub, status.NewTerminalSink(console))
	}

	services := service.NewServices(cfg, storages, remote, tree, sink, logger)

	handlers, err := handler.NewHandlers(services, hub, cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers.HTTP.Init(), cfg.Coordinator, logger)
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}

	watcher := bookmarks.NewWatcher(tree, services.SyncService, cfg.Workers.WatchDebounce, logger)

	return &App{
		storages: storages,
		services: services,
		hub:      hub,
		workers:  workers.NewWorkers(srv, watcher),
		logger:   logger,
	}, nil
}

// Run starts the engine and its workers and blocks until ctx is cancelled,
// a stop signal arrives or a worker fails. Storage is closed on return.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Error().Err(err).Str("func", "App.Run").Msg("close storages")
		}
	}()

	engine := a.services.SyncService
	if err := engine.Start(ctx); err != nil {
		return fmt.Errorf("start sync engine: %w", err)
	}
	defer engine.Shutdown()

	a.logger.Info().Str("func", "App.Run").Msg("daemon started")
	if err := a.workers.Run(ctx); err != nil {
		return err
	}
	a.logger.Info().Str("func", "App.Run").Msg("daemon stopped")

	return nil
}

// Status returns the status hub published on the coordinator stream.
func (a *App) Status() *status.Hub {
	return a.hub
}
