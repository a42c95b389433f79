// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
)

// NewCoordinatorConnector returns the Connector used by syncctl: it loads the
// CLI configuration and signs every message with the configured hash key.
func NewCoordinatorConnector(logger *logger.Logger) Connector {
	return func(configPath string) (Coordinator, error) {
		cfg, err := config.GetCtlConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("error getting configs: %w", err)
		}

		coordinator, err := adapter.NewCoordinatorClient(cfg.Address, cfg.HashKey, cfg.RequestTimeout, logger)
		if err != nil {
			return nil, err
		}

		return coordinator, nil
	}
}
