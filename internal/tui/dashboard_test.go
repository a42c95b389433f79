// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/mock"
	"github.com/MKhiriev/go-bookmark-sync/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestDashboard(t *testing.T) (dashboardModel, *mock.MockCoordinator) {
	t.Helper()
	ctrl := mock.NewMockCoordinator(gomock.NewController(t))
	return newDashboardModel(context.Background(), ctrl), ctrl
}

func update(t *testing.T, m dashboardModel, msg tea.Msg) (dashboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	dm, ok := next.(dashboardModel)
	require.True(t, ok)
	return dm, cmd
}

func TestNew_RequiresController(t *testing.T) {
	_, err := New(nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoController)
}

func TestDashboard_StatusLoaded(t *testing.T) {
	m, _ := newTestDashboard(t)

	m, cmd := update(t, m, statusLoadedMsg{status: models.StatusResponse{
		Status:      models.StatusIdleSynced,
		Enabled:     true,
		QueueLength: 2,
		Current:     &models.SyncRequest{ID: "sync-1", Type: models.SyncTypeRemote},
	}})

	assert.Nil(t, cmd)
	assert.True(t, m.loaded)
	view := m.View()
	assert.Contains(t, view, "up to date")
	assert.Contains(t, view, "enabled: yes")
	assert.Contains(t, view, "queued: 2")
	assert.Contains(t, view, "current: remote (sync-1)")
}

func TestDashboard_PushRunsSync(t *testing.T) {
	m, ctrl := newTestDashboard(t)
	ctrl.EXPECT().
		SyncBookmarks(gomock.Any(), models.SyncBookmarksMessage{
			Sync:    &models.SyncRequest{Type: models.SyncTypeLocal},
			RunSync: true,
		}).
		Return(models.SyncBookmarksResponse{ID: "sync-2"}, nil)
	ctrl.EXPECT().Status(gomock.Any()).Return(models.StatusResponse{Status: models.StatusIdleSynced}, nil)

	m, cmd := update(t, m, runes("p"))
	require.NotNil(t, cmd)
	assert.Equal(t, "push", m.busy)

	// a second command is ignored while one is in flight
	_, ignored := update(t, m, runes("l"))
	assert.Nil(t, ignored)

	m, reload := update(t, m, cmd())
	assert.Empty(t, m.busy)
	assert.Equal(t, "push done", m.lastResult)

	require.NotNil(t, reload)
	m, _ = update(t, m, reload())
	assert.Equal(t, models.StatusIdleSynced, m.status.Status)
}

func TestDashboard_SyncKeySendsExecute(t *testing.T) {
	m, ctrl := newTestDashboard(t)
	ctrl.EXPECT().
		SyncBookmarks(gomock.Any(), models.SyncBookmarksMessage{RunSync: true}).
		Return(models.SyncBookmarksResponse{}, nil)

	m, cmd := update(t, m, runes("s"))
	require.NotNil(t, cmd)
	assert.Equal(t, "sync", m.busy)

	done, ok := cmd().(syncDoneMsg)
	require.True(t, ok)
	assert.NoError(t, done.err)
}

func TestDashboard_ErrorOverlay(t *testing.T) {
	m, _ := newTestDashboard(t)

	m, _ = update(t, m, syncDoneMsg{action: "pull", err: app.Wrap(app.ErrSyncNotFound, context.Canceled)})
	require.NotNil(t, m.errOverlay)
	assert.Contains(t, m.View(), app.ErrSyncNotFound.Error())

	// keys other than esc leave the overlay open
	m, cmd := update(t, m, runes("p"))
	assert.Nil(t, cmd)
	require.NotNil(t, m.errOverlay)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.errOverlay)
}

func TestDashboard_StatusChangedReloads(t *testing.T) {
	m, ctrl := newTestDashboard(t)
	ctrl.EXPECT().Status(gomock.Any()).Return(models.StatusResponse{Status: models.StatusSyncingRemote, QueueLength: 1}, nil)

	m, cmd := update(t, m, statusChangedMsg{msg: models.StatusMessage{Status: models.StatusSyncingRemote, At: time.Now()}})
	assert.Equal(t, models.StatusSyncingRemote, m.status.Status)
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, 1, m.status.QueueLength)
}

func TestDashboard_Info(t *testing.T) {
	m, ctrl := newTestDashboard(t)
	ctrl.EXPECT().AppInfo(gomock.Any()).Return(models.NewAppBuildInfo("2.1.0", "", "deadbeef"), nil)

	m, cmd := update(t, m, runes("i"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	view := m.View()
	assert.Contains(t, view, "Version: 2.1.0")
	assert.Contains(t, view, "Commit: deadbeef")
}

func TestDashboard_Quit(t *testing.T) {
	m, _ := newTestDashboard(t)

	_, cmd := update(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain", err: assert.AnError, want: assert.AnError.Error()},
		{name: "sync kind", err: app.ErrSyncDisabled, want: "sync is disabled"},
		{name: "sync stopped", err: app.ErrSyncNotFound, want: "sync not found on remote service\nSync is off; run `syncctl enable` to resume."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
