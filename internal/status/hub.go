// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package status

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

const subscriberBuffer = 8

// Hub holds the current status and broadcasts changes to subscribers.
type Hub struct {
	mu      sync.RWMutex
	current models.StatusMessage
	subs    map[int]chan models.StatusMessage
	nextID  int

	now    func() time.Time
	logger *logger.Logger
}

// NewHub returns a Hub starting in the initial status.
func NewHub(initial models.SyncStatus, logger *logger.Logger) *Hub {
	return &Hub{
		current: models.StatusMessage{Status: initial, At: time.Now().UTC()},
		subs:    make(map[int]chan models.StatusMessage),
		now:     time.Now,
		logger:  logger,
	}
}

// SetStatus implements [Sink]. Repeated values are not broadcast.
func (h *Hub) SetStatus(_ context.Context, status models.SyncStatus) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current.Status == status {
		return
	}
	h.current = models.StatusMessage{Status: status, At: h.now().UTC()}

	h.logger.Debug().
		Str("func", "Hub.SetStatus").
		Str("status", string(status)).
		Int("subscribers", len(h.subs)).
		Msg("status changed")

	for _, ch := range h.subs {
		publish(ch, h.current)
	}
}

// Current returns the last status set.
func (h *Hub) Current() models.StatusMessage {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Subscribe returns a channel receiving the current status followed by every
// change, and a function that ends the subscription. A slow subscriber loses
// intermediate values, never the latest one.
func (h *Hub) Subscribe() (<-chan models.StatusMessage, func()) {
	ch := make(chan models.StatusMessage, subscriberBuffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	ch <- h.current
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// publish delivers msg, dropping the oldest buffered value when ch is full.
func publish(ch chan models.StatusMessage, msg models.StatusMessage) {
	for {
		select {
		case ch <- msg:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
