// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/handler/http"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, status http.StatusSource, cfg config.App, appInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.SyncService == nil || status == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services.SyncService, status, cfg.HashKey, appInfo, logger),
	}, nil
}
