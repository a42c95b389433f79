// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// DaemonConfig is the view of [StructuredConfig] used by the background
// owner (cmd/syncd).
type DaemonConfig struct {
	App         App
	Storage     Storage
	Coordinator Coordinator
	Adapter     Adapter
	Workers     Workers
	Log         Log
}

// GetDaemonConfig loads flags from args, then environment variables, the
// JSON file and defaults, and validates the daemon view.
func GetDaemonConfig(args []string) (*DaemonConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	daemonCfg := &DaemonConfig{
		App:         cfg.App,
		Storage:     cfg.Storage,
		Coordinator: cfg.Coordinator,
		Adapter:     cfg.Adapter,
		Workers:     cfg.Workers,
		Log:         cfg.Log,
	}

	return daemonCfg, daemonCfg.validate()
}

// CtlConfig is the view used by the foreground CLI (cmd/syncctl).
type CtlConfig struct {
	// Address is the coordinator address of the running daemon.
	Address string
	// HashKey signs every message sent to the daemon.
	HashKey string
	// RequestTimeout bounds a single coordinator request.
	RequestTimeout time.Duration
}

// GetCtlConfig loads environment variables, the optional JSON file at
// jsonPath and defaults. Command-line flags belong to the CLI itself.
func GetCtlConfig(jsonPath string) (*CtlConfig, error) {
	b := newConfigBuilder()
	if jsonPath != "" {
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: jsonPath})
	}

	cfg, err := b.
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	ctlCfg := &CtlConfig{
		Address:        cfg.Coordinator.Address,
		HashKey:        cfg.App.HashKey,
		RequestTimeout: cfg.Coordinator.RequestTimeout,
	}

	return ctlCfg, ctlCfg.validate()
}
