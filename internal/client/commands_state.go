// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bookmark-sync/internal/status"
	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/spf13/cobra"
)

func (a *App) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the daemon's sync status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.coordinator.Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("get status: %w", err)
			}
			return a.print(st, formatStatus(st))
		},
	}
}

func formatStatus(st models.StatusResponse) string {
	var b strings.Builder
	b.WriteString(status.Render(st.Status))
	if st.Enabled {
		b.WriteString("\nenabled: yes")
	} else {
		b.WriteString("\nenabled: no")
	}
	fmt.Fprintf(&b, "\nqueued: %d", st.QueueLength)
	if st.Current != nil {
		fmt.Fprintf(&b, "\ncurrent: %s", formatRequest(st.Current))
	}
	return b.String()
}

func formatRequest(req *models.SyncRequest) string {
	if req == nil {
		return "none"
	}
	s := fmt.Sprintf("%s (%s)", req.Type, req.ID)
	if req.ChangeInfo != nil {
		s += " " + req.ChangeInfo.Type
	}
	return s
}

func (a *App) newQueueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "queue",
		Short: "Show the number of queued syncs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.coordinator.QueueLength(cmd.Context())
			if err != nil {
				return fmt.Errorf("get queue length: %w", err)
			}
			return a.print(models.QueueLengthResponse{Length: n}, fmt.Sprintf("queued: %d", n))
		},
	}
}

func (a *App) newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the sync in flight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := a.coordinator.CurrentSync(cmd.Context())
			if err != nil {
				return fmt.Errorf("get current sync: %w", err)
			}
			return a.print(models.CurrentSyncResponse{Sync: req}, "current: "+formatRequest(req))
		},
	}
}

func (a *App) newSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size",
		Short: "Show the size of the encrypted bookmarks payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.coordinator.SyncSize(cmd.Context())
			if err != nil {
				return fmt.Errorf("get sync size: %w", err)
			}
			return a.print(models.SyncSizeResponse{Size: n}, fmt.Sprintf("size: %d bytes", n))
		},
	}
}

func (a *App) newVersionCmd() *cobra.Command {
	var daemon bool

	cmd := &cobra.Command{
		Use:         "version",
		Short:       "Show build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{offlineAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !daemon {
				return a.print(a.buildInfo, a.buildInfo.String())
			}

			if err := a.dial(); err != nil {
				return err
			}
			info, err := a.coordinator.AppInfo(cmd.Context())
			if err != nil {
				return fmt.Errorf("get daemon build info: %w", err)
			}
			return a.print(info, info.String())
		},
	}
	cmd.Flags().BoolVar(&daemon, "daemon", false, "show the running daemon's build information")

	return cmd
}
