// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bookmark-sync/internal/client"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.Nop()
	if os.Getenv("SYNCCTL_DEBUG") != "" {
		log = logger.NewLogger("syncctl")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var app client.Client = client.NewApp(
		client.NewCoordinatorConnector(log),
		os.Stdout,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		log,
	)

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
