// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package status

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// Mirror is a foreground, read-only copy of the daemon's status. It is
// refreshed by every message pushed on the status stream.
type Mirror struct {
	url    string
	header http.Header

	mu       sync.RWMutex
	current  models.StatusMessage
	onChange func(models.StatusMessage)

	logger *logger.Logger
}

// NewMirror returns a mirror of the stream at url. onChange, if not nil, is
// called for every received message.
func NewMirror(url string, header http.Header, onChange func(models.StatusMessage), logger *logger.Logger) *Mirror {
	return &Mirror{
		url:      url,
		header:   header,
		onChange: onChange,
		logger:   logger,
	}
}

// Current returns the last received status message.
func (m *Mirror) Current() models.StatusMessage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Run connects to the stream and follows it until ctx is cancelled or the
// daemon closes the connection.
func (m *Mirror) Run(ctx context.Context) error {
	conn, _, err := websocket.Dial(ctx, m.url, &websocket.DialOptions{ //nolint:bodyclose // websocket.Dial closes the response body internally
		HTTPHeader: m.header,
	})
	if err != nil {
		return fmt.Errorf("dial status stream: %w", err)
	}
	defer conn.CloseNow()

	for {
		var msg models.StatusMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			if ctx.Err() != nil || websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return nil
			}
			return fmt.Errorf("read status stream: %w", err)
		}

		m.mu.Lock()
		m.current = msg
		m.mu.Unlock()

		m.logger.Debug().
			Str("func", "Mirror.Run").
			Str("status", string(msg.Status)).
			Msg("status received")

		if m.onChange != nil {
			m.onChange(msg)
		}
	}
}

