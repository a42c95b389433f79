// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive sync dashboard of syncctl.
package tui

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/status"
	"github.com/MKhiriev/go-bookmark-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Controller is the part of the daemon the dashboard drives.
type Controller interface {
	SyncBookmarks(ctx context.Context, msg models.SyncBookmarksMessage) (models.SyncBookmarksResponse, error)
	Status(ctx context.Context) (models.StatusResponse, error)
	AppInfo(ctx context.Context) (models.AppBuildInfo, error)
	StatusStreamURL() string
	StatusStreamHeader() http.Header
}

type TUI struct {
	ctrl   Controller
	logger *logger.Logger
}

func New(ctrl Controller, logger *logger.Logger) (*TUI, error) {
	if ctrl == nil {
		return nil, ErrNoController
	}
	return &TUI{ctrl: ctrl, logger: logger}, nil
}

// Dashboard runs the dashboard until the user quits or ctx is cancelled.
// Status changes pushed by the daemon are forwarded to the program.
func (t *TUI) Dashboard(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(newDashboardModel(ctx, t.ctrl), tea.WithAltScreen(), tea.WithContext(ctx))

	mirror := status.NewMirror(t.ctrl.StatusStreamURL(), t.ctrl.StatusStreamHeader(), func(msg models.StatusMessage) {
		program.Send(statusChangedMsg{msg: msg})
	}, t.logger)
	go func() {
		if err := mirror.Run(ctx); err != nil {
			program.Send(streamClosedMsg{err: err})
		}
	}()

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	return nil
}
