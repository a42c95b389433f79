// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package status

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle   = lipgloss.NewStyle().Bold(true)
	syncedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	syncingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	timeStyle    = lipgloss.NewStyle().Faint(true)
)

// TerminalSink renders status changes as lines on a terminal.
type TerminalSink struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerminalSink returns a sink writing to out.
func NewTerminalSink(out io.Writer) *TerminalSink {
	return &TerminalSink{out: out}
}

// SetStatus implements [Sink].
func (t *TerminalSink) SetStatus(_ context.Context, status models.SyncStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintln(t.out, Render(status))
}

// Show writes msg with its timestamp.
func (t *TerminalSink) Show(msg models.StatusMessage) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintf(t.out, "%s %s\n", timeStyle.Render(msg.At.Local().Format("15:04:05")), Render(msg.Status))
}

// Render returns the styled label of status.
func Render(status models.SyncStatus) string {
	return labelStyle.Render("sync:") + " " + styleFor(status).Render(Label(status))
}

// Label returns a human readable description of status.
func Label(status models.SyncStatus) string {
	switch status {
	case models.StatusIdleSynced:
		return "up to date"
	case models.StatusIdleNotSynced:
		return "not synced"
	case models.StatusSyncingLocal:
		return "uploading local changes"
	case models.StatusSyncingRemote:
		return "fetching remote changes"
	default:
		return string(status)
	}
}

func styleFor(status models.SyncStatus) lipgloss.Style {
	switch {
	case status.IsSyncing():
		return syncingStyle
	case status == models.StatusIdleSynced:
		return syncedStyle
	default:
		return pendingStyle
	}
}
