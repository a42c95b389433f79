// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

func (cfg *DaemonConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.Bookmarks.FilePath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RateLimit < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Coordinator.Address == "" {
		return ErrInvalidCoordinatorConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}
	if !semver.IsValid(CanonicalVersion(cfg.App.Version)) {
		return fmt.Errorf("%w: version %q", ErrInvalidAppConfigs, cfg.App.Version)
	}

	return nil
}

func (cfg *CtlConfig) validate() error {
	if cfg.Address == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidCoordinatorConfigs
	}

	if cfg.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// CanonicalVersion prefixes v with "v" as required by semver.
func CanonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
