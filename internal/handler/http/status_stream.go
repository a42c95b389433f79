// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const statusWriteTimeout = 5 * time.Second

// streamStatus pushes the current status and every change over a websocket
// until the peer goes away.
func (h *Handler) streamStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Err(err).Str("func", "*Handler.streamStatus").Msg("websocket handshake failed")
		return
	}
	defer conn.CloseNow()

	updates, unsubscribe := h.status.Subscribe()
	defer unsubscribe()

	// The stream is write-only; CloseRead handles control frames and
	// cancels ctx when the peer closes.
	ctx := conn.CloseRead(r.Context())

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-updates:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "status stream closed")
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, statusWriteTimeout)
			err := wsjson.Write(writeCtx, conn, msg)
			cancel()
			if err != nil {
				log.Debug().Err(err).Str("func", "*Handler.streamStatus").Msg("status subscriber gone")
				return
			}
		}
	}
}
