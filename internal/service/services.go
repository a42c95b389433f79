// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/crypto"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/status"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
)

// Services groups the engine and the collaborators built for it.
type Services struct {
	SyncService SyncService
	Cipher      PayloadCipher
	Providers   []SyncProvider
}

// NewServices wires the engine: the payload cipher over the key chain, the
// bookmarks provider over tree, and the update check job.
func NewServices(cfg *config.DaemonConfig, storages *store.Storages, remote adapter.RemoteService, tree NativeTree, sink status.Sink, logger *logger.Logger) *Services {
	kv := storages.KeyValueStore
	cipher := NewBookmarkCipher(kv, crypto.NewKeyChainService())
	providers := []SyncProvider{
		NewBookmarkSyncProvider(tree, remote, cipher, kv, logger),
	}

	engine := NewSyncService(SyncServiceDeps{
		Store:             kv,
		Remote:            remote,
		Cipher:            cipher,
		Providers:         providers,
		Status:            sink,
		Reporter:          app.NewLogReporter(logger),
		Job:               NewSyncJob(cfg.Workers.SyncInterval, logger),
		AppVersion:        cfg.App.Version,
		InitialCheckDelay: cfg.Workers.InitialCheckDelay,
	}, logger)

	return &Services{
		SyncService: engine,
		Cipher:      cipher,
		Providers:   providers,
	}
}
