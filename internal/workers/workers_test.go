// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestNewWorkers_SkipsNil(t *testing.T) {
	ws := NewWorkers(nil, &mockWorker{}, nil)
	assert.Equal(t, 1, ws.Len())
}

func TestWorkers_Run_FirstErrorStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocking := &mockWorker{}
	failing := WorkerFunc(func(context.Context) error { return boom })

	err := NewWorkers(blocking, failing).Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), blocking.runCount.Load())
}

func TestWorkerFunc_Run(t *testing.T) {
	called := false
	f := WorkerFunc(func(context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, f.Run(context.Background()))
	assert.True(t, called)
}
