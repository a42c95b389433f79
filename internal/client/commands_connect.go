// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/spf13/cobra"
)

func (a *App) newEnableCmd() *cobra.Command {
	var info models.SyncInfo

	cmd := &cobra.Command{
		Use:   "enable",
		Short: "Enable sync, optionally attaching to a sync or creating a new one",
		Long: `Enable sync on this machine.

Without flags sync is re-enabled with the stored sync details. With --password
and --id the daemon attaches to an existing sync; with --password alone a new
remote sync is created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var msg models.EnableSyncMessage
			if info != (models.SyncInfo{}) {
				if info.Password == "" {
					return ErrPasswordRequired
				}
				msg.SyncInfo = &info
			}

			if err := a.coordinator.EnableSync(cmd.Context(), msg); err != nil {
				return fmt.Errorf("enable sync: %w", err)
			}
			return a.print(struct {
				Enabled bool `json:"enabled"`
			}{true}, "sync enabled")
		},
	}
	cmd.Flags().StringVar(&info.ID, "id", "", "id of the sync to attach to")
	cmd.Flags().StringVar(&info.Password, "password", "", "sync password")
	cmd.Flags().StringVar(&info.ServiceURL, "service-url", "", "remote service URL of the sync")

	return cmd
}

func (a *App) newDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable",
		Short: "Disable sync and stop the update check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.coordinator.DisableSync(cmd.Context()); err != nil {
				return fmt.Errorf("disable sync: %w", err)
			}
			return a.print(struct {
				Enabled bool `json:"enabled"`
			}{false}, "sync disabled")
		},
	}
}

func (a *App) newDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Disable sync and forget the sync details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.coordinator.Disconnect(cmd.Context()); err != nil {
				return fmt.Errorf("disconnect: %w", err)
			}
			return a.print(struct {
				Connected bool `json:"connected"`
			}{false}, "disconnected")
		},
	}
}
