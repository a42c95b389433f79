// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-bookmark-sync/internal/status"
	"github.com/MKhiriev/go-bookmark-sync/internal/tui"
	"github.com/spf13/cobra"
)

func (a *App) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow the daemon's sync status until interrupted",
		Long: `Follow the daemon's sync status until interrupted.

The current status is printed first, then one line per change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sink := status.NewTerminalSink(a.out)
			mirror := status.NewMirror(a.coordinator.StatusStreamURL(), a.coordinator.StatusStreamHeader(), sink.Show, a.logger)
			return mirror.Run(cmd.Context())
		},
	}
}

func (a *App) newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive sync dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui, err := tui.New(a.coordinator, a.logger)
			if err != nil {
				return err
			}
			return ui.Dashboard(cmd.Context())
		},
	}
}
