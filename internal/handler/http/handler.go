// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/internal/validators"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

//go:generate mockgen -source=handler.go -destination=../../mock/handler_mock.go -package=mock

// SyncEngine is the part of the sync engine reachable through command
// messages.
type SyncEngine interface {
	EnqueueSync(ctx context.Context, req models.SyncRequest) (string, error)
	SubmitSync(ctx context.Context, req models.SyncRequest, runSync bool) error
	ExecuteSync(ctx context.Context) error
	CheckForUpdates(ctx context.Context) (bool, error)
	EnableSync(ctx context.Context) error
	DisableSync(ctx context.Context) error
	Connect(ctx context.Context, info models.SyncInfo) error
	Disconnect(ctx context.Context) error
	IsSyncEnabled(ctx context.Context) (bool, error)
	CurrentSync() *models.SyncRequest
	QueueLength() int
	SyncSize(ctx context.Context) (int, error)
}

// StatusSource publishes the status indicator.
type StatusSource interface {
	Current() models.StatusMessage
	Subscribe() (<-chan models.StatusMessage, func())
}

type Handler struct {
	engine  SyncEngine
	status  StatusSource
	hashKey string
	appInfo models.AppBuildInfo
	ids     *utils.UUIDGenerator

	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(engine SyncEngine, status StatusSource, hashKey string, appInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		engine:  engine,
		status:  status,
		hashKey: hashKey,
		appInfo: appInfo,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,

		validator: validators.NewMessageValidator(),
	}
}
