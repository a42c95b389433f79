// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/daemon"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetDaemonConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("syncd").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("syncd", logger.FileOptions{
		Path:       cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	log.Debug().Any("config", redacted(cfg)).Msg("received configs")

	ctx := context.Background()

	// status lines go to the terminal only when logs do not
	var console io.Writer
	if cfg.Log.FilePath != "" {
		console = os.Stdout
	}

	app, err := daemon.NewApp(ctx, cfg, buildInfo, console, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init daemon error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("daemon run error")
	}
}

func redacted(cfg *config.DaemonConfig) config.DaemonConfig {
	c := *cfg
	c.App.HashKey = "***"
	return c
}
