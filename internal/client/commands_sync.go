// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/bookmarks"
	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/spf13/cobra"
)

func (a *App) newPushCmd() *cobra.Command {
	return a.newQueueSyncCmd("push", "Upload local bookmark changes", models.SyncTypeLocal)
}

func (a *App) newPullCmd() *cobra.Command {
	return a.newQueueSyncCmd("pull", "Fetch remote changes into the local bookmarks", models.SyncTypeRemote)
}

func (a *App) newUpgradeCmd() *cobra.Command {
	return a.newQueueSyncCmd("upgrade", "Rewrite the remote payload in the current version", models.SyncTypeUpgrade)
}

func (a *App) newCancelCmd() *cobra.Command {
	return a.newQueueSyncCmd("cancel", "Drop queued syncs and disable sync", models.SyncTypeCancel)
}

func (a *App) newQueueSyncCmd(use, short string, syncType models.SyncType) *cobra.Command {
	var noWait bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.sendSync(cmd.Context(), models.SyncRequest{Type: syncType}, !noWait)
		},
	}
	cmd.Flags().BoolVar(&noWait, "no-wait", false, "queue the sync and return without waiting for it")

	return cmd
}

func (a *App) sendSync(ctx context.Context, req models.SyncRequest, runSync bool) error {
	resp, err := a.coordinator.SyncBookmarks(ctx, models.SyncBookmarksMessage{Sync: &req, RunSync: runSync})
	if err != nil {
		return fmt.Errorf("%s sync: %w", req.Type, err)
	}

	text := fmt.Sprintf("%s sync completed", req.Type)
	if resp.Queued {
		text = fmt.Sprintf("%s sync %s queued", req.Type, resp.ID)
	}
	return a.print(resp, text)
}

func (a *App) newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Check the remote for updates and process the queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.coordinator.SyncBookmarks(cmd.Context(), models.SyncBookmarksMessage{RunSync: true})
			if err != nil {
				return fmt.Errorf("execute sync: %w", err)
			}
			return a.print(resp, "sync executed")
		},
	}
}

func (a *App) newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <snapshot.json>",
		Short: "Replace the synced bookmarks with a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := bookmarks.NewFileTree(args[0], a.logger)
			if err != nil {
				return err
			}

			tree, err := snapshot.Read(cmd.Context())
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}
			if len(tree) == 0 {
				return fmt.Errorf("%w: %s", ErrEmptySnapshot, snapshot.Path())
			}

			resp, err := a.coordinator.RestoreBookmarks(cmd.Context(), models.RestoreBookmarksMessage{Bookmarks: tree})
			if err != nil {
				return fmt.Errorf("restore bookmarks: %w", err)
			}
			return a.print(resp, fmt.Sprintf("restored %d bookmarks", models.CountBookmarks(tree)))
		},
	}
}

func (a *App) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether the remote sync changed since the last sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			available, err := a.coordinator.CheckForUpdates(cmd.Context())
			if err != nil {
				return fmt.Errorf("check for updates: %w", err)
			}

			text := "no updates"
			if available {
				text = "updates available"
			}
			return a.print(models.UpdatesResponse{UpdatesAvailable: available}, text)
		},
	}
}
