// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the sync orchestration engine: the queue of
// pending sync requests, the single-flight processing loop that drains it,
// the recovery policy applied to failures and the periodic update check.
//
// The engine only talks to its collaborators through interfaces: sync
// providers ([SyncProvider]), the native bookmark tree ([NativeTree]), the
// payload cipher ([PayloadCipher]), the remote service
// (adapter.RemoteService), the key-value store (store.KeyValueStore) and the
// status indicator (status.Sink).
package service

import (
	"context"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SyncService,SyncJob

// SyncProvider processes one kind of synced data. Providers are dispatched in
// parallel for every request; results are keyed by Name.
type SyncProvider interface {
	// Name identifies the provider in results and logs.
	Name() string

	// Enable is called once sync has been enabled.
	Enable(ctx context.Context) error

	// Disable is called when sync is disabled and must drop provider caches.
	Disable(ctx context.Context) error

	// ProcessSync applies req and reports whether the remote payload must be
	// rewritten.
	ProcessSync(ctx context.Context, req models.SyncRequest) (models.ProcessResult, error)

	// HandleUpdateRemoteFailed is called for every provider when the remote
	// write failed, before the error propagates.
	HandleUpdateRemoteFailed(ctx context.Context, err error, lastData []models.Bookmark, req models.SyncRequest) error
}

// NativeTree is the local bookmark store the user edits.
type NativeTree interface {
	Read(ctx context.Context) ([]models.Bookmark, error)
	Write(ctx context.Context, tree []models.Bookmark) error
}

// PayloadCipher seals the bookmark tree for the remote service using the
// credentials of the current sync.
type PayloadCipher interface {
	Encrypt(ctx context.Context, tree []models.Bookmark) (string, error)
	Decrypt(ctx context.Context, payload string) ([]models.Bookmark, error)
}

// SyncJob runs the periodic update check.
type SyncJob interface {
	// Start (re)starts the timer; check runs on every tick and on Trigger.
	Start(ctx context.Context, check func(ctx context.Context) error)
	// Stop cancels the timer without waiting. Safe to call from check.
	Stop()
	// Trigger runs a check as soon as possible.
	Trigger()
	// Shutdown stops the timer and waits for a running check to return.
	Shutdown()
	// Running reports whether the timer is active.
	Running() bool
}

// SyncService is the engine as used by the daemon.
type SyncService interface {
	// Start restores the status indicator from the stored enabled flag and,
	// when enabled, starts the update check.
	Start(ctx context.Context) error
	// Shutdown stops the update check.
	Shutdown()

	// QueueSync appends req to the queue and returns its completion handle.
	// With runSync processing starts in the background.
	QueueSync(ctx context.Context, req models.SyncRequest, runSync bool) (*Completion, error)
	// EnqueueSync queues req, starts processing in the background and
	// returns the id assigned to the request.
	EnqueueSync(ctx context.Context, req models.SyncRequest) (string, error)
	// SubmitSync queues req and waits for its outcome.
	SubmitSync(ctx context.Context, req models.SyncRequest, runSync bool) error
	// ProcessSyncQueue drains the queue unless a sync is already in flight.
	ProcessSyncQueue(ctx context.Context) error
	// ExecuteSync checks the remote for updates and processes the queue.
	ExecuteSync(ctx context.Context) error

	CheckForUpdates(ctx context.Context) (bool, error)
	CheckSyncExists(ctx context.Context) (bool, error)

	EnableSync(ctx context.Context) error
	DisableSync(ctx context.Context) error
	Connect(ctx context.Context, info models.SyncInfo) error
	Disconnect(ctx context.Context) error
	SetSyncRemoved(ctx context.Context) error

	IsSyncEnabled(ctx context.Context) (bool, error)
	CurrentSync() *models.SyncRequest
	QueueLength() int
	SyncSize(ctx context.Context) (int, error)
}
