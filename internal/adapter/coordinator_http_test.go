// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "coordinator-key"

func newTestCoordinator(t *testing.T, serverURL string) *CoordinatorClient {
	t.Helper()
	c, err := NewCoordinatorClient(serverURL, testHashKey, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return c
}

func TestCoordinatorClient_SignsMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/messages/syncBookmarks", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.True(t, utils.VerifyMessage(r.Method, r.URL.Path, body, testHashKey, r.Header.Get(utils.HashSHA256Header)))

		var msg models.SyncBookmarksMessage
		require.NoError(t, json.Unmarshal(body, &msg))
		assert.Equal(t, models.SyncTypeLocal, msg.Sync.Type)
		assert.True(t, msg.RunSync)

		writeJSON(t, w, http.StatusOK, models.SyncBookmarksResponse{ID: "req-1", Queued: true})
	}))
	defer srv.Close()

	got, err := newTestCoordinator(t, srv.URL).SyncBookmarks(context.Background(), models.SyncBookmarksMessage{
		Sync:    &models.SyncRequest{Type: models.SyncTypeLocal},
		RunSync: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "req-1", got.ID)
}

func TestCoordinatorClient_RecreatesTaxonomyErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{
			Error:   app.NameOf(app.ErrSyncDisabled),
			Message: app.ErrSyncDisabled.Error(),
		})
	}))
	defer srv.Close()

	_, err := newTestCoordinator(t, srv.URL).QueueLength(context.Background())

	assert.ErrorIs(t, err, app.ErrSyncDisabled)
}

func TestCoordinatorClient_UnnamedErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("integrity check failed"))
	}))
	defer srv.Close()

	err := newTestCoordinator(t, srv.URL).DisableSync(context.Background())

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "integrity check failed")
}

func TestCoordinatorClient_DaemonDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestCoordinator(t, url).Status(context.Background())

	assert.True(t, IsCoordinatorUnreachable(err))
}

func TestCoordinatorClient_Queries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/messages/getCurrentSync":
			writeJSON(t, w, http.StatusOK, models.CurrentSyncResponse{Sync: &models.SyncRequest{ID: "cur", Type: models.SyncTypeRemote}})
		case "/api/messages/getSyncQueueLength":
			writeJSON(t, w, http.StatusOK, models.QueueLengthResponse{Length: 3})
		case "/api/messages/checkForUpdates":
			writeJSON(t, w, http.StatusOK, models.UpdatesResponse{UpdatesAvailable: true})
		case "/api/messages/getSyncSize":
			writeJSON(t, w, http.StatusOK, models.SyncSizeResponse{Size: 42})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := newTestCoordinator(t, srv.URL)
	ctx := context.Background()

	cur, err := c.CurrentSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cur", cur.ID)

	n, err := c.QueueLength(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	updates, err := c.CheckForUpdates(ctx)
	require.NoError(t, err)
	assert.True(t, updates)

	size, err := c.SyncSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, size)
}

func TestCoordinatorClient_StatusStreamURL(t *testing.T) {
	c, err := NewCoordinatorClient("127.0.0.1:8765", testHashKey, time.Second, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "ws://127.0.0.1:8765/api/status/stream", c.StatusStreamURL())
	sig := c.StatusStreamHeader().Get(utils.HashSHA256Header)
	assert.True(t, utils.VerifyMessage(http.MethodGet, StatusStreamPath, nil, testHashKey, sig))
}
