// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirror_FollowsStream(t *testing.T) {
	pushed := []models.SyncStatus{models.StatusIdleSynced, models.StatusSyncingRemote, models.StatusIdleNotSynced}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-Test"))

		conn, err := websocket.Accept(w, r, nil)
		require.NoError(t, err)
		defer conn.CloseNow()

		for _, s := range pushed {
			require.NoError(t, wsjson.Write(r.Context(), conn, models.StatusMessage{Status: s, At: time.Now()}))
		}
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}))
	defer srv.Close()

	var (
		mu  sync.Mutex
		got []models.SyncStatus
	)
	header := http.Header{}
	header.Set("X-Test", "secret")

	m := NewMirror("ws"+strings.TrimPrefix(srv.URL, "http"), header, func(msg models.StatusMessage) {
		mu.Lock()
		got = append(got, msg.Status)
		mu.Unlock()
	}, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, m.Run(ctx))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, pushed, got)
	assert.Equal(t, models.StatusIdleNotSynced, m.Current().Status)
}

func TestMirror_DialError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	m := NewMirror("ws"+strings.TrimPrefix(srv.URL, "http"), nil, nil, logger.Nop())

	err := m.Run(context.Background())
	assert.Error(t, err)
}
