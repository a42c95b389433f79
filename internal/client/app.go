// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/spf13/cobra"
)

const rootUse = "syncctl"

// App is the syncctl command tree bound to a daemon connector.
type App struct {
	connect   Connector
	out       io.Writer
	buildInfo models.AppBuildInfo

	// set by the persistent flags and the pre-run hook
	configPath  string
	jsonOutput  bool
	coordinator Coordinator

	logger *logger.Logger
}

func NewApp(connect Connector, out io.Writer, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		connect:   connect,
		out:       out,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run executes args against a freshly built command tree.
func (a *App) Run(ctx context.Context, args []string) error {
	cmd := a.rootCmd()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil && app.ShouldDisplayDefaultPageOnError(err) {
		_, _ = fmt.Fprintln(a.out, settingsHint(err))
	}
	return err
}

// settingsHint tells the user what to do after a failure that stopped sync.
func settingsHint(err error) string {
	if errors.Is(err, app.ErrSyncUncommitted) {
		return "hint: changes are kept and will be synced once the remote service is reachable"
	}
	return "hint: sync is off; check the sync details and run `" + rootUse + " enable`"
}

func (a *App) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           rootUse,
		Short:         "Control the bookmark sync daemon",
		Long:          "syncctl sends commands to a running syncd and shows its sync status.",
		Version:       a.buildInfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[offlineAnnotation] == "true" {
				return nil
			}
			return a.dial()
		},
	}
	cmd.SetOut(a.out)
	cmd.SetErr(a.out)

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file path")
	cmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "output in JSON format")

	cmd.AddCommand(
		a.newPushCmd(),
		a.newPullCmd(),
		a.newUpgradeCmd(),
		a.newCancelCmd(),
		a.newSyncCmd(),
		a.newRestoreCmd(),
		a.newCheckCmd(),
		a.newEnableCmd(),
		a.newDisableCmd(),
		a.newDisconnectCmd(),
		a.newStatusCmd(),
		a.newQueueCmd(),
		a.newCurrentCmd(),
		a.newSizeCmd(),
		a.newWatchCmd(),
		a.newDashboardCmd(),
		a.newVersionCmd(),
	)

	return cmd
}

// offlineAnnotation marks commands that never talk to the daemon.
const offlineAnnotation = "offline"

func (a *App) dial() error {
	if a.coordinator != nil {
		return nil
	}

	coordinator, err := a.connect(a.configPath)
	if err != nil {
		return fmt.Errorf("connect to daemon: %w", err)
	}
	a.coordinator = coordinator

	return nil
}

// print writes v as indented JSON with --json and text otherwise.
func (a *App) print(v any, text string) error {
	if a.jsonOutput {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	_, err := fmt.Fprintln(a.out, text)
	return err
}
