// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package status

import (
	"context"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

// Sink receives status indicator changes.
type Sink interface {
	SetStatus(ctx context.Context, status models.SyncStatus)
}

type multiSink []Sink

// Multi returns a Sink forwarding every change to each of sinks in order.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) SetStatus(ctx context.Context, status models.SyncStatus) {
	for _, s := range m {
		s.SetStatus(ctx, status)
	}
}
