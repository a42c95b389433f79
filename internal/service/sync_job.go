// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
)

// DefaultSyncInterval is the update check period used when none is set.
const DefaultSyncInterval = 5 * time.Minute

type syncJob struct {
	interval time.Duration
	trigger  chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSyncJob creates a job that runs the update check every interval. If
// interval is zero or negative it defaults to 5 minutes. The job is idle
// until Start is called.
func NewSyncJob(interval time.Duration, logger *logger.Logger) SyncJob {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	return &syncJob{
		interval: interval,
		trigger:  make(chan struct{}, 1),
		logger:   logger,
	}
}

// Start implements SyncJob. It stops any previously running timer, then
// launches a goroutine calling check on every tick and on every Trigger.
// check is given a context that outlives Stop, so a check that stops the
// job itself keeps working. The goroutine exits when ctx is cancelled or
// Stop is called. Start after Shutdown does nothing.
func (j *syncJob) Start(ctx context.Context, check func(ctx context.Context) error) {
	j.Stop()

	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()
		return
	}
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
			case <-j.trigger:
			}

			if err := check(context.WithoutCancel(jobCtx)); err != nil {
				j.logger.Debug().Err(err).
					Str("func", "syncJob.Start").
					Msg("scheduled update check failed")
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the timer and returns immediately; a
// check in progress runs to completion.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Trigger implements SyncJob. Triggers arriving while one is pending are
// coalesced.
func (j *syncJob) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

// Shutdown implements SyncJob. It stops the timer and blocks until the
// goroutine has fully exited. Must not be called from check.
func (j *syncJob) Shutdown() {
	j.mu.Lock()
	j.closed = true
	j.mu.Unlock()

	j.Stop()
	j.wg.Wait()
}

// Running implements SyncJob.
func (j *syncJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cancel != nil
}
