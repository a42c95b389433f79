// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bookmark-sync/internal/status"
	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type dashboardModel struct {
	ctx  context.Context
	ctrl Controller

	status  models.StatusResponse
	loaded  bool
	spinner spinner.Model

	busy       string // action in flight, empty when idle
	lastResult string
	errOverlay *errorOverlayModel
	info       *models.AppBuildInfo
	streamErr  string
}

func newDashboardModel(ctx context.Context, ctrl Controller) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return dashboardModel{ctx: ctx, ctrl: ctrl, spinner: s}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadStatus(), m.spinner.Tick)
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case statusChangedMsg:
		m.status.Status = msg.msg.Status
		// queue length and the current sync come with the full status
		return m, m.cmdLoadStatus()

	case statusLoadedMsg:
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.status = msg.status
		m.loaded = true
		return m, nil

	case syncDoneMsg:
		m.busy = ""
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, m.cmdLoadStatus()
		}
		m.lastResult = msg.action + " done"
		if msg.resp.Queued {
			m.lastResult = fmt.Sprintf("%s queued (%s)", msg.action, msg.resp.ID)
		}
		return m, m.cmdLoadStatus()

	case appInfoMsg:
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.info = &msg.info
		return m, nil

	case streamClosedMsg:
		m.streamErr = humanizeError(msg.err)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.errOverlay != nil || m.info != nil {
		if key.Matches(msg, keys.esc) {
			m.errOverlay = nil
			m.info = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.refresh):
		return m, m.cmdLoadStatus()
	case key.Matches(msg, keys.info):
		return m, m.cmdLoadInfo()
	}

	// one command at a time; the daemon queues the rest anyway
	if m.busy != "" {
		return m, nil
	}

	var req *models.SyncRequest
	action := "sync"
	switch {
	case key.Matches(msg, keys.push):
		req, action = &models.SyncRequest{Type: models.SyncTypeLocal}, "push"
	case key.Matches(msg, keys.pull):
		req, action = &models.SyncRequest{Type: models.SyncTypeRemote}, "pull"
	case key.Matches(msg, keys.upgrade):
		req, action = &models.SyncRequest{Type: models.SyncTypeUpgrade}, "upgrade"
	case key.Matches(msg, keys.cancel):
		req, action = &models.SyncRequest{Type: models.SyncTypeCancel}, "cancel"
	case key.Matches(msg, keys.sync):
	default:
		return m, nil
	}

	m.busy = action
	m.lastResult = ""
	return m, m.cmdSync(action, req)
}

func (m dashboardModel) View() string {
	if m.errOverlay != nil {
		return appStyle.Render(m.errOverlay.View())
	}
	if m.info != nil {
		return appStyle.Render(renderBuildInfoWindow(*m.info))
	}

	var b strings.Builder
	if !m.loaded {
		b.WriteString(m.spinner.View() + " loading...")
	} else {
		b.WriteString(status.Render(m.status.Status))
		b.WriteString("\n")
		if m.status.Enabled {
			b.WriteString("enabled: yes\n")
		} else {
			b.WriteString("enabled: no\n")
		}
		fmt.Fprintf(&b, "queued: %d\n", m.status.QueueLength)
		if cur := m.status.Current; cur != nil {
			fmt.Fprintf(&b, "current: %s (%s)\n", cur.Type, valueOrDash(cur.ID))
		}
	}

	if m.busy != "" {
		fmt.Fprintf(&b, "\n%s %s...", m.spinner.View(), m.busy)
	} else if m.lastResult != "" {
		b.WriteString("\n" + m.lastResult)
	}
	if m.streamErr != "" {
		b.WriteString("\n" + errorStyle.Render("status stream: "+m.streamErr))
	}

	return appStyle.Render(renderPage("BOOKMARK SYNC", b.String(), keys.hotKeys()))
}

func (m dashboardModel) cmdLoadStatus() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		st, err := ctrl.Status(ctx)
		return statusLoadedMsg{status: st, err: err}
	}
}

func (m dashboardModel) cmdLoadInfo() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		info, err := ctrl.AppInfo(ctx)
		return appInfoMsg{info: info, err: err}
	}
}

func (m dashboardModel) cmdSync(action string, req *models.SyncRequest) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		resp, err := ctrl.SyncBookmarks(ctx, models.SyncBookmarksMessage{Sync: req, RunSync: true})
		return syncDoneMsg{action: action, resp: resp, err: err}
	}
}
