// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

// NewWorkers groups workers; nil entries are skipped.
func NewWorkers(workers ...Worker) *Workers {
	ws := &Workers{}
	for _, w := range workers {
		if w != nil {
			ws.workers = append(ws.workers, w)
		}
	}
	return ws
}

// Run starts every worker in its own goroutine and waits for all of them.
// The first failure cancels the context passed to the others and is
// returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}
	return g.Wait()
}

// Len returns the number of grouped workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
