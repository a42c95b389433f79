// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/mock"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSyncID      = "sync-1"
	testPassword    = "correct horse"
	testAppVersion  = "1.2.0"
	testLastUpdated = "2026-01-01T00:00:00Z"
)

// ── test doubles ─────────────────────────────────────────────────────────────

// stubProvider records what it processed. process defaults to returning the
// request snapshot without a remote update.
type stubProvider struct {
	mu       sync.Mutex
	process  func(ctx context.Context, req models.SyncRequest) (models.ProcessResult, error)
	requests []models.SyncRequest

	enabled      int
	disabled     int
	remoteFailed []error
}

func (p *stubProvider) Name() string { return BookmarksProviderName }

func (p *stubProvider) Enable(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled++
	return nil
}

func (p *stubProvider) Disable(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disabled++
	return nil
}

func (p *stubProvider) ProcessSync(ctx context.Context, req models.SyncRequest) (models.ProcessResult, error) {
	p.mu.Lock()
	p.requests = append(p.requests, req)
	process := p.process
	p.mu.Unlock()

	if process == nil {
		return models.ProcessResult{Data: req.Bookmarks}, nil
	}
	return process(ctx, req)
}

func (p *stubProvider) HandleUpdateRemoteFailed(_ context.Context, err error, _ []models.Bookmark, _ models.SyncRequest) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.remoteFailed = append(p.remoteFailed, err)
	return nil
}

func (p *stubProvider) processed() []models.SyncRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.SyncRequest(nil), p.requests...)
}

func (p *stubProvider) counts() (enabled, disabled int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled, p.disabled
}

type stubCipher struct{}

func (stubCipher) Encrypt(_ context.Context, tree []models.Bookmark) (string, error) {
	return "sealed", nil
}

func (stubCipher) Decrypt(_ context.Context, _ string) ([]models.Bookmark, error) {
	return nil, nil
}

type stubJob struct {
	mu       sync.Mutex
	running  bool
	starts   int
	stops    int
	triggers int
}

func (j *stubJob) Start(_ context.Context, _ func(ctx context.Context) error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.running = true
	j.starts++
}

func (j *stubJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.running = false
	j.stops++
}

func (j *stubJob) Trigger() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.triggers++
}

func (j *stubJob) Shutdown() { j.Stop() }

func (j *stubJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

type recordingSink struct {
	mu       sync.Mutex
	statuses []models.SyncStatus
}

func (s *recordingSink) SetStatus(_ context.Context, status models.SyncStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, status)
}

func (s *recordingSink) last() models.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.statuses) == 0 {
		return ""
	}
	return s.statuses[len(s.statuses)-1]
}

func (s *recordingSink) seen(status models.SyncStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.statuses {
		if st == status {
			return true
		}
	}
	return false
}

type testEnv struct {
	svc      *syncService
	kv       store.KeyValueStore
	job      *stubJob
	sink     *recordingSink
	provider *stubProvider
}

func newTestEnv(t *testing.T, remote adapter.RemoteService) *testEnv {
	t.Helper()
	env := &testEnv{
		kv:       store.NewMemoryKeyValueStore(),
		job:      &stubJob{},
		sink:     &recordingSink{},
		provider: &stubProvider{},
	}
	env.svc = NewSyncService(SyncServiceDeps{
		Store:      env.kv,
		Remote:     remote,
		Cipher:     stubCipher{},
		Providers:  []SyncProvider{env.provider},
		Status:     env.sink,
		Job:        env.job,
		AppVersion: testAppVersion,
	}, logger.Nop()).(*syncService)
	return env
}

// enable stores a connected, enabled sync.
func (e *testEnv) enable(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.kv.Set(ctx, store.KeySyncInfo, models.SyncInfo{
		ID:         testSyncID,
		Password:   testPassword,
		Version:    testAppVersion,
		ServiceURL: "https://sync.example.com",
	}))
	require.NoError(t, e.kv.Set(ctx, store.KeyLastUpdated, testLastUpdated))
	require.NoError(t, e.kv.Set(ctx, store.KeySyncEnabled, true))
}

func (e *testEnv) enabled(t *testing.T) bool {
	t.Helper()
	enabled, err := e.svc.IsSyncEnabled(context.Background())
	require.NoError(t, err)
	return enabled
}

func (e *testEnv) queue(t *testing.T, typ models.SyncType) *Completion {
	t.Helper()
	c, err := e.svc.QueueSync(context.Background(), models.SyncRequest{Type: typ}, false)
	require.NoError(t, err)
	return c
}

func (e *testEnv) queuedIDs() []string {
	e.svc.mu.Lock()
	defer e.svc.mu.Unlock()
	return e.svc.queue.ids()
}

func sampleTree() []models.Bookmark {
	return []models.Bookmark{{ID: "1", Title: "Go", URL: "https://go.dev"}}
}

// ── QueueSync ────────────────────────────────────────────────────────────────

func TestQueueSync_RejectsUnknownType(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := env.svc.QueueSync(context.Background(), models.SyncRequest{Type: "merge"}, false)
	assert.ErrorIs(t, err, ErrInvalidSyncType)
	assert.Zero(t, env.svc.QueueLength())
}

func TestQueueSync_AssignsIDs(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)

	env.queue(t, models.SyncTypeLocal)
	env.queue(t, models.SyncTypeRemote)

	ids := env.queuedIDs()
	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.NotEqual(t, ids[0], ids[1])
}

func TestQueueSync_CancelDropsEverythingQueuedBefore(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)

	a := env.queue(t, models.SyncTypeLocal)
	b := env.queue(t, models.SyncTypeRemote)
	c := env.queue(t, models.SyncTypeLocal)
	cancel := env.queue(t, models.SyncTypeCancel)

	assert.Equal(t, 1, env.svc.QueueLength())
	for _, dropped := range []*Completion{a, b, c} {
		require.True(t, dropped.Settled())
		assert.ErrorIs(t, dropped.Err(), app.ErrSyncCancelled)
	}
	assert.False(t, cancel.Settled())
}

func TestQueueSync_DisabledKeepsOnlyLatest(t *testing.T) {
	env := newTestEnv(t, nil)

	first := env.queue(t, models.SyncTypeRemote)
	env.queue(t, models.SyncTypeLocal)

	assert.Equal(t, 1, env.svc.QueueLength())
	assert.ErrorIs(t, first.Err(), app.ErrSyncCancelled)
}

// ── ProcessSyncQueue ─────────────────────────────────────────────────────────

func TestProcessSyncQueue_EmptyQueue(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)

	require.NoError(t, env.svc.ProcessSyncQueue(context.Background()))
	assert.Empty(t, env.provider.processed())
}

func TestProcessSyncQueue_SingleFlight(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	env.provider.process = func(_ context.Context, req models.SyncRequest) (models.ProcessResult, error) {
		once.Do(func() {
			close(entered)
			<-release
		})
		return models.ProcessResult{Data: req.Bookmarks}, nil
	}

	first := env.queue(t, models.SyncTypeLocal)

	done := make(chan error, 1)
	go func() { done <- env.svc.ProcessSyncQueue(context.Background()) }()
	<-entered

	require.NotNil(t, env.svc.CurrentSync())
	assert.Equal(t, models.SyncTypeLocal, env.svc.CurrentSync().Type)

	second := env.queue(t, models.SyncTypeLocal)

	// A second drain while one is in flight returns without processing.
	require.NoError(t, env.svc.ProcessSyncQueue(context.Background()))
	assert.Len(t, env.provider.processed(), 1)

	close(release)
	require.NoError(t, <-done)

	assert.Len(t, env.provider.processed(), 2)
	assert.Nil(t, env.svc.CurrentSync())
	assert.Zero(t, env.svc.QueueLength())
	require.True(t, first.Settled())
	require.True(t, second.Settled())
	assert.NoError(t, first.Err())
	assert.NoError(t, second.Err())
}

func TestProcessSyncQueue_NoChangesSkipsRemoteWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No expectations: any remote call fails the test.
	remote := mock.NewMockRemoteService(ctrl)

	env := newTestEnv(t, remote)
	env.enable(t)
	env.provider.process = func(_ context.Context, _ models.SyncRequest) (models.ProcessResult, error) {
		return models.ProcessResult{Data: sampleTree(), UpdateRemote: false}, nil
	}

	c := env.queue(t, models.SyncTypeLocal)
	require.NoError(t, env.svc.ProcessSyncQueue(context.Background()))
	require.NoError(t, c.Err())

	var payload string
	require.NoError(t, env.kv.Get(context.Background(), store.KeyBookmarks, &payload))
	assert.Equal(t, "sealed", payload)

	size, err := env.svc.SyncSize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len("sealed"), size)
}

func TestProcessSyncQueue_WritesRemoteWhenRequested(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteService(ctrl)

	env := newTestEnv(t, remote)
	env.enable(t)
	env.provider.process = func(_ context.Context, _ models.SyncRequest) (models.ProcessResult, error) {
		return models.ProcessResult{Data: sampleTree(), UpdateRemote: true}, nil
	}

	remote.EXPECT().GetVersion(gomock.Any(), testSyncID).Return("1.0.0", nil)
	remote.EXPECT().UpdateBookmarks(gomock.Any(), models.UpdateBookmarksRequest{
		ID:          testSyncID,
		Bookmarks:   "sealed",
		LastUpdated: testLastUpdated,
	}).Return(models.UpdateBookmarksResponse{LastUpdated: "2026-01-02T00:00:00Z"}, nil)

	c := env.queue(t, models.SyncTypeLocal)
	require.NoError(t, env.svc.ProcessSyncQueue(context.Background()))
	require.NoError(t, c.Err())

	var lastUpdated string
	require.NoError(t, env.kv.Get(context.Background(), store.KeyLastUpdated, &lastUpdated))
	assert.Equal(t, "2026-01-02T00:00:00Z", lastUpdated)

	assert.True(t, env.sink.seen(models.StatusSyncingLocal))
	assert.Equal(t, models.StatusIdleSynced, env.sink.last())
	assert.True(t, env.job.Running())
}

func TestProcessSyncQueue_UpgradeWritesSyncVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteService(ctrl)

	env := newTestEnv(t, remote)
	env.enable(t)
	env.provider.process = func(_ context.Context, req models.SyncRequest) (models.ProcessResult, error) {
		return models.ProcessResult{Data: sampleTree(), UpdateRemote: req.Type == models.SyncTypeUpgrade}, nil
	}

	remote.EXPECT().GetVersion(gomock.Any(), testSyncID).Return("", nil)
	remote.EXPECT().UpdateBookmarks(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UpdateBookmarksRequest) (models.UpdateBookmarksResponse, error) {
			assert.Equal(t, testAppVersion, req.SyncVersion)
			return models.UpdateBookmarksResponse{LastUpdated: "2026-01-03T00:00:00Z"}, nil
		})

	env.queue(t, models.SyncTypeUpgrade)
	require.NoError(t, env.svc.ProcessSyncQueue(context.Background()))

	var info models.SyncInfo
	require.NoError(t, env.kv.Get(context.Background(), store.KeySyncInfo, &info))
	assert.Equal(t, testAppVersion, info.Version)
	assert.True(t, env.sink.seen(models.StatusSyncingRemote))
}

func TestProcessSyncQueue_BatchChainsData(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)

	tree := sampleTree()
	_, err := env.svc.QueueSync(context.Background(), models.SyncRequest{Type: models.SyncTypeLocal, Bookmarks: tree}, false)
	require.NoError(t, err)
	env.queue(t, models.SyncTypeLocal)

	require.NoError(t, env.svc.ProcessSyncQueue(context.Background()))

	processed := env.provider.processed()
	require.Len(t, processed, 2)
	assert.Equal(t, tree, processed[1].Bookmarks)
}

func TestProcessSyncQueue_RemoteVersionTooNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteService(ctrl)

	env := newTestEnv(t, remote)
	env.enable(t)
	env.provider.process = func(_ context.Context, _ models.SyncRequest) (models.ProcessResult, error) {
		return models.ProcessResult{Data: sampleTree(), UpdateRemote: true}, nil
	}
	remote.EXPECT().GetVersion(gomock.Any(), testSyncID).Return("2.0.0", nil)

	c := env.queue(t, models.SyncTypeLocal)
	err := env.svc.ProcessSyncQueue(context.Background())

	assert.ErrorIs(t, err, app.ErrSyncVersionNotSupported)
	assert.ErrorIs(t, c.Err(), app.ErrSyncVersionNotSupported)
	assert.False(t, env.enabled(t))
	assert.Equal(t, models.StatusIdleNotSynced, env.sink.last())
}

func TestProcessSyncQueue_RemoteWriteFailureNotifiesProviders(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteService(ctrl)

	env := newTestEnv(t, remote)
	env.enable(t)
	env.provider.process = func(_ context.Context, _ models.SyncRequest) (models.ProcessResult, error) {
		return models.ProcessResult{Data: sampleTree(), UpdateRemote: true}, nil
	}

	remote.EXPECT().GetVersion(gomock.Any(), testSyncID).Return(testAppVersion, nil)
	remote.EXPECT().UpdateBookmarks(gomock.Any(), gomock.Any()).
		Return(models.UpdateBookmarksResponse{}, app.Wrap(app.ErrDataOutOfSync, errors.New("409")))

	c := env.queue(t, models.SyncTypeLocal)
	err := env.svc.ProcessSyncQueue(context.Background())

	assert.ErrorIs(t, err, app.ErrDataOutOfSync)
	assert.ErrorIs(t, c.Err(), app.ErrDataOutOfSync)
	require.Len(t, env.provider.remoteFailed, 1)
	assert.ErrorIs(t, env.provider.remoteFailed[0], app.ErrDataOutOfSync)
	// A failed local push is not retried from scratch.
	assert.Zero(t, env.svc.QueueLength())
	assert.True(t, env.enabled(t))
}

func TestProcessSyncQueue_CancelDisablesSync(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)

	c := env.queue(t, models.SyncTypeCancel)
	require.NoError(t, env.svc.ProcessSyncQueue(context.Background()))

	require.True(t, c.Settled())
	assert.NoError(t, c.Err())
	assert.False(t, env.enabled(t))
	assert.Empty(t, env.provider.processed())
	assert.False(t, env.job.Running())
}

func TestProcessSyncQueue_NoProviders(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)
	env.svc.providers = nil

	c := env.queue(t, models.SyncTypeLocal)
	err := env.svc.ProcessSyncQueue(context.Background())

	assert.ErrorIs(t, err, app.ErrSyncFailed)
	assert.ErrorIs(t, c.Err(), ErrNoProviders)
}

// ── recovery ─────────────────────────────────────────────────────────────────

func TestRecovery_ConnectivityRequeuesAtHead(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)
	offline := true
	env.provider.process = func(_ context.Context, req models.SyncRequest) (models.ProcessResult, error) {
		if offline && req.Type == models.SyncTypeRemote {
			return models.ProcessResult{}, app.Wrap(app.ErrNetworkConnection, errors.New("dial tcp: refused"))
		}
		return models.ProcessResult{}, nil
	}

	a := env.queue(t, models.SyncTypeRemote)
	b := env.queue(t, models.SyncTypeLocal)
	before := env.queuedIDs()

	err := env.svc.ProcessSyncQueue(context.Background())

	assert.ErrorIs(t, err, app.ErrSyncUncommitted)
	assert.ErrorIs(t, err, app.ErrNetworkConnection)
	assert.Equal(t, before, env.queuedIDs())
	assert.False(t, a.Settled())
	assert.True(t, env.enabled(t))

	var removed models.RemovedSync
	assert.ErrorIs(t, env.kv.Get(context.Background(), store.KeyRemovedSync, &removed), store.ErrKeyNotFound)

	// connection is back: the requeued request runs first, then the rest
	offline = false
	require.NoError(t, env.svc.ProcessSyncQueue(context.Background()))

	var order []string
	for _, req := range env.provider.processed() {
		order = append(order, req.ID)
	}
	assert.Equal(t, []string{before[0], before[0], before[1]}, order)
	assert.Zero(t, env.svc.QueueLength())

	require.True(t, a.Settled())
	require.True(t, b.Settled())
	assert.NoError(t, a.Err())
	assert.NoError(t, b.Err())
}

func TestRecovery_LocalConnectivityFailureSurfaces(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)
	env.provider.process = func(_ context.Context, _ models.SyncRequest) (models.ProcessResult, error) {
		return models.ProcessResult{}, app.Wrap(app.ErrNetworkConnection, errors.New("offline"))
	}

	c := env.queue(t, models.SyncTypeLocal)
	err := env.svc.ProcessSyncQueue(context.Background())

	assert.ErrorIs(t, err, app.ErrNetworkConnection)
	assert.NotErrorIs(t, err, app.ErrSyncUncommitted)
	assert.True(t, c.Settled())
	assert.Zero(t, env.svc.QueueLength())
}

func TestRecovery_SyncNotFoundRecordsRemovedSync(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)
	require.NoError(t, env.kv.Set(context.Background(), store.KeyBookmarksPlain, sampleTree()))
	env.provider.process = func(_ context.Context, _ models.SyncRequest) (models.ProcessResult, error) {
		return models.ProcessResult{}, app.ErrSyncNotFound
	}

	a := env.queue(t, models.SyncTypeRemote)
	b := env.queue(t, models.SyncTypeRemote)
	err := env.svc.ProcessSyncQueue(context.Background())

	assert.ErrorIs(t, err, app.ErrSyncNotFound)
	assert.ErrorIs(t, a.Err(), app.ErrSyncNotFound)
	assert.ErrorIs(t, b.Err(), app.ErrSyncCancelled)
	assert.False(t, env.enabled(t))
	assert.Zero(t, env.svc.QueueLength())

	_, disabled := env.provider.counts()
	assert.Equal(t, 1, disabled)

	var removed models.RemovedSync
	require.NoError(t, env.kv.Get(context.Background(), store.KeyRemovedSync, &removed))
	assert.Equal(t, sampleTree(), removed.Bookmarks)
	assert.Equal(t, testLastUpdated, removed.LastUpdated)
	assert.Equal(t, "https://sync.example.com", removed.SyncInfo.ServiceURL)
	assert.Empty(t, removed.SyncInfo.ID)

	var info models.SyncInfo
	require.NoError(t, env.kv.Get(context.Background(), store.KeySyncInfo, &info))
	assert.Empty(t, info.Password)
	assert.Empty(t, info.ID)
	assert.Equal(t, models.StatusIdleNotSynced, env.sink.last())
}

func TestRecovery_OutOfSyncQueuesLocalResync(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)
	env.provider.process = func(_ context.Context, req models.SyncRequest) (models.ProcessResult, error) {
		if req.Type == models.SyncTypeRemote {
			return models.ProcessResult{}, app.Wrap(app.ErrDataOutOfSync, errors.New("mapping stale"))
		}
		return models.ProcessResult{}, nil
	}

	a := env.queue(t, models.SyncTypeRemote)
	b := env.queue(t, models.SyncTypeUpgrade)

	require.NoError(t, env.svc.ProcessSyncQueue(context.Background()))

	assert.ErrorIs(t, a.Err(), app.ErrDataOutOfSync)
	assert.ErrorIs(t, b.Err(), app.ErrSyncCancelled)

	processed := env.provider.processed()
	require.Len(t, processed, 2)
	assert.Equal(t, models.SyncTypeRemote, processed[0].Type)
	assert.Equal(t, models.SyncTypeLocal, processed[1].Type)
	assert.Nil(t, processed[1].Bookmarks)
	assert.True(t, env.enabled(t))
	assert.Zero(t, env.svc.QueueLength())
}

func TestRecovery_UnclassifiedErrorBecomesSyncFailed(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)
	boom := errors.New("boom")
	env.provider.process = func(_ context.Context, _ models.SyncRequest) (models.ProcessResult, error) {
		return models.ProcessResult{}, boom
	}

	c := env.queue(t, models.SyncTypeLocal)
	err := env.svc.ProcessSyncQueue(context.Background())

	assert.ErrorIs(t, err, app.ErrSyncFailed)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, c.Err(), app.ErrSyncFailed)
	assert.True(t, env.enabled(t))
}

func TestRecovery_TooManyRequestsDisables(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)
	env.provider.process = func(_ context.Context, _ models.SyncRequest) (models.ProcessResult, error) {
		return models.ProcessResult{}, app.ErrTooManyRequests
	}

	env.queue(t, models.SyncTypeRemote)
	err := env.svc.ProcessSyncQueue(context.Background())

	assert.ErrorIs(t, err, app.ErrTooManyRequests)
	assert.False(t, env.enabled(t))

	var removed models.RemovedSync
	assert.ErrorIs(t, env.kv.Get(context.Background(), store.KeyRemovedSync, &removed), store.ErrKeyNotFound)
}

// ── SubmitSync / EnqueueSync ─────────────────────────────────────────────────

func TestSubmitSync_AutoEnables(t *testing.T) {
	tests := []struct {
		name string
		req  models.SyncRequest
		want bool
	}{
		{name: "remote", req: models.SyncRequest{Type: models.SyncTypeRemote}, want: true},
		{name: "upgrade", req: models.SyncRequest{Type: models.SyncTypeUpgrade}, want: true},
		{name: "local without snapshot", req: models.SyncRequest{Type: models.SyncTypeLocal}, want: true},
		{name: "local with snapshot", req: models.SyncRequest{Type: models.SyncTypeLocal, Bookmarks: sampleTree()}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			require.NoError(t, env.kv.Set(context.Background(), store.KeySyncInfo, models.SyncInfo{ID: testSyncID, Password: testPassword}))

			require.NoError(t, env.svc.SubmitSync(context.Background(), tt.req, true))

			assert.Equal(t, tt.want, env.enabled(t))
			enabled, _ := env.provider.counts()
			assert.Equal(t, tt.want, enabled == 1)
		})
	}
}

func TestQueueSync_AutoEnablesWithoutWaitingCaller(t *testing.T) {
	env := newTestEnv(t, nil)
	require.NoError(t, env.kv.Set(context.Background(), store.KeySyncInfo, models.SyncInfo{ID: testSyncID, Password: testPassword}))

	c, err := env.svc.QueueSync(context.Background(), models.SyncRequest{Type: models.SyncTypeRemote}, true)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, c.Wait(ctx))

	assert.True(t, env.enabled(t))
	assert.Zero(t, env.svc.QueueLength())
	assert.Equal(t, models.StatusIdleSynced, env.sink.last())
}

func TestEnqueueSync_AutoEnables(t *testing.T) {
	env := newTestEnv(t, nil)
	require.NoError(t, env.kv.Set(context.Background(), store.KeySyncInfo, models.SyncInfo{ID: testSyncID, Password: testPassword}))

	_, err := env.svc.EnqueueSync(context.Background(), models.SyncRequest{Type: models.SyncTypeUpgrade})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		enabled, _ := env.provider.counts()
		return enabled == 1
	}, time.Second, 5*time.Millisecond)
	assert.True(t, env.enabled(t))
}

func TestQueueSync_SnapshotDoesNotEnable(t *testing.T) {
	env := newTestEnv(t, nil)
	require.NoError(t, env.kv.Set(context.Background(), store.KeySyncInfo, models.SyncInfo{ID: testSyncID, Password: testPassword}))

	c, err := env.svc.QueueSync(context.Background(), models.SyncRequest{Type: models.SyncTypeLocal, Bookmarks: sampleTree()}, false)
	require.NoError(t, err)
	require.NoError(t, env.svc.ProcessSyncQueue(context.Background()))

	assert.NoError(t, c.Err())
	assert.False(t, env.enabled(t))
}

func TestSubmitSync_ReturnsProcessingError(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)
	env.provider.process = func(_ context.Context, _ models.SyncRequest) (models.ProcessResult, error) {
		return models.ProcessResult{}, app.ErrNativeBookmarkNotFound
	}

	err := env.svc.SubmitSync(context.Background(), models.SyncRequest{Type: models.SyncTypeLocal}, true)
	assert.ErrorIs(t, err, app.ErrNativeBookmarkNotFound)
}

func TestSubmitSync_WaitsForQueuedSync(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)

	errc := make(chan error, 1)
	go func() {
		errc <- env.svc.SubmitSync(context.Background(), models.SyncRequest{Type: models.SyncTypeLocal}, false)
	}()

	require.Eventually(t, func() bool { return env.svc.QueueLength() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, env.svc.ProcessSyncQueue(context.Background()))
	assert.NoError(t, <-errc)
}

func TestEnqueueSync_ProcessesInBackground(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)

	id, err := env.svc.EnqueueSync(context.Background(), models.SyncRequest{Type: models.SyncTypeLocal})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Eventually(t, func() bool {
		processed := env.provider.processed()
		return len(processed) == 1 && processed[0].ID == id
	}, time.Second, 5*time.Millisecond)
}

// ── enable / disable ─────────────────────────────────────────────────────────

func TestDisableSync_Idempotent(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)
	ctx := context.Background()

	require.NoError(t, env.svc.DisableSync(ctx))
	require.NoError(t, env.svc.DisableSync(ctx))

	_, disabled := env.provider.counts()
	assert.Equal(t, 1, disabled)
	assert.False(t, env.enabled(t))

	var info models.SyncInfo
	require.NoError(t, env.kv.Get(ctx, store.KeySyncInfo, &info))
	assert.Equal(t, testSyncID, info.ID)
	assert.Empty(t, info.Password)

	var lastUpdated string
	assert.ErrorIs(t, env.kv.Get(ctx, store.KeyLastUpdated, &lastUpdated), store.ErrKeyNotFound)
	assert.Equal(t, models.StatusIdleNotSynced, env.sink.last())
}

func TestEnableSync(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	require.NoError(t, env.kv.Set(ctx, store.KeyRemovedSync, models.RemovedSync{LastUpdated: testLastUpdated}))

	require.NoError(t, env.svc.EnableSync(ctx))

	assert.True(t, env.enabled(t))
	assert.True(t, env.job.Running())
	assert.Equal(t, 1, env.job.triggers)
	assert.Equal(t, models.StatusIdleSynced, env.sink.last())

	var removed models.RemovedSync
	assert.ErrorIs(t, env.kv.Get(ctx, store.KeyRemovedSync, &removed), store.ErrKeyNotFound)
}

func TestStart_RestoresStatusFromFlag(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	disabled := newTestEnv(t, nil)
	require.NoError(t, disabled.svc.Start(ctx))
	assert.Equal(t, models.StatusIdleNotSynced, disabled.sink.last())
	assert.False(t, disabled.job.Running())

	enabled := newTestEnv(t, nil)
	enabled.enable(t)
	enabled.svc.initialCheckDelay = time.Millisecond
	require.NoError(t, enabled.svc.Start(ctx))
	assert.Equal(t, models.StatusIdleSynced, enabled.sink.last())
	assert.True(t, enabled.job.Running())
	require.Eventually(t, func() bool {
		enabled.job.mu.Lock()
		defer enabled.job.mu.Unlock()
		return enabled.job.triggers == 1
	}, time.Second, 5*time.Millisecond)
}

// ── update checks ────────────────────────────────────────────────────────────

func TestCheckForUpdates(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		remote string
		want   bool
	}{
		{name: "same instant", stored: testLastUpdated, remote: "2026-01-01T00:00:00.000Z", want: false},
		{name: "changed", stored: testLastUpdated, remote: "2026-01-05T10:00:00Z", want: true},
		{name: "never synced", stored: "", remote: testLastUpdated, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			remote := mock.NewMockRemoteService(ctrl)
			env := newTestEnv(t, remote)
			env.enable(t)
			if tt.stored == "" {
				require.NoError(t, env.kv.Remove(context.Background(), store.KeyLastUpdated))
			}
			remote.EXPECT().GetLastUpdated(gomock.Any(), testSyncID).Return(tt.remote, nil)

			got, err := env.svc.CheckForUpdates(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecuteSync_Disabled(t *testing.T) {
	env := newTestEnv(t, nil)
	assert.ErrorIs(t, env.svc.ExecuteSync(context.Background()), app.ErrSyncDisabled)
}

func TestExecuteSync_QueuesRemoteWhenUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteService(ctrl)
	env := newTestEnv(t, remote)
	env.enable(t)

	remote.EXPECT().GetLastUpdated(gomock.Any(), testSyncID).Return("2026-02-01T00:00:00Z", nil)

	require.NoError(t, env.svc.ExecuteSync(context.Background()))

	processed := env.provider.processed()
	require.Len(t, processed, 1)
	assert.Equal(t, models.SyncTypeRemote, processed[0].Type)
}

func TestExecuteSync_FailedCheckCountsAsUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteService(ctrl)
	env := newTestEnv(t, remote)
	env.enable(t)

	remote.EXPECT().GetLastUpdated(gomock.Any(), testSyncID).Return("", app.ErrNetworkConnection)

	require.NoError(t, env.svc.ExecuteSync(context.Background()))
	assert.Len(t, env.provider.processed(), 1)
}

func TestExecuteSync_NoUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteService(ctrl)
	env := newTestEnv(t, remote)
	env.enable(t)

	remote.EXPECT().GetLastUpdated(gomock.Any(), testSyncID).Return(testLastUpdated, nil)

	require.NoError(t, env.svc.ExecuteSync(context.Background()))
	assert.Empty(t, env.provider.processed())
}

func TestScheduledCheck_IgnoresDisabled(t *testing.T) {
	env := newTestEnv(t, nil)
	assert.NoError(t, env.svc.scheduledCheck(context.Background()))
}

func TestCheckSyncExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mock.NewMockRemoteService(ctrl)
		env := newTestEnv(t, remote)
		env.enable(t)
		remote.EXPECT().GetLastUpdated(gomock.Any(), testSyncID).Return(testLastUpdated, nil)

		exists, err := env.svc.CheckSyncExists(context.Background())
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("inconclusive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mock.NewMockRemoteService(ctrl)
		env := newTestEnv(t, remote)
		env.enable(t)
		remote.EXPECT().GetLastUpdated(gomock.Any(), testSyncID).Return("", app.ErrNetworkConnection)

		exists, err := env.svc.CheckSyncExists(context.Background())
		require.NoError(t, err)
		assert.True(t, exists)
		assert.True(t, env.enabled(t))
	})

	t.Run("removed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mock.NewMockRemoteService(ctrl)
		env := newTestEnv(t, remote)
		env.enable(t)
		remote.EXPECT().GetLastUpdated(gomock.Any(), testSyncID).Return("", app.Wrap(app.ErrSyncNotFound, errors.New("404")))

		exists, err := env.svc.CheckSyncExists(context.Background())
		require.NoError(t, err)
		assert.False(t, exists)
		assert.False(t, env.enabled(t))

		var removed models.RemovedSync
		assert.NoError(t, env.kv.Get(context.Background(), store.KeyRemovedSync, &removed))
	})

	t.Run("disabled", func(t *testing.T) {
		env := newTestEnv(t, nil)
		_, err := env.svc.CheckSyncExists(context.Background())
		assert.ErrorIs(t, err, app.ErrSyncDisabled)
	})
}

// ── Connect / Disconnect ─────────────────────────────────────────────────────

func TestConnect_RequiresPassword(t *testing.T) {
	env := newTestEnv(t, nil)
	err := env.svc.Connect(context.Background(), models.SyncInfo{ID: testSyncID})
	assert.ErrorIs(t, err, app.ErrIncompleteSyncInfo)
}

func TestConnect_CreatesNewSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteService(ctrl)
	env := newTestEnv(t, remote)
	ctx := context.Background()

	remote.EXPECT().CreateSync(gomock.Any(), testAppVersion).Return(models.CreateSyncResponse{
		ID:          "new-sync",
		LastUpdated: testLastUpdated,
		Version:     testAppVersion,
	}, nil)

	require.NoError(t, env.svc.Connect(ctx, models.SyncInfo{Password: testPassword}))

	var info models.SyncInfo
	require.NoError(t, env.kv.Get(ctx, store.KeySyncInfo, &info))
	assert.Equal(t, "new-sync", info.ID)
	assert.Equal(t, testPassword, info.Password)
	assert.Equal(t, testAppVersion, info.Version)
	assert.True(t, env.enabled(t))

	processed := env.provider.processed()
	require.Len(t, processed, 1)
	assert.Equal(t, models.SyncTypeLocal, processed[0].Type)
}

func TestConnect_JoinsExistingSync(t *testing.T) {
	env := newTestEnv(t, nil)

	require.NoError(t, env.svc.Connect(context.Background(), models.SyncInfo{ID: testSyncID, Password: testPassword}))

	processed := env.provider.processed()
	require.Len(t, processed, 1)
	assert.Equal(t, models.SyncTypeRemote, processed[0].Type)
	assert.True(t, env.enabled(t))
}

func TestDisconnect_RemovesSyncState(t *testing.T) {
	env := newTestEnv(t, nil)
	env.enable(t)
	ctx := context.Background()
	require.NoError(t, env.kv.Set(ctx, store.KeyBookmarks, "sealed"))
	require.NoError(t, env.kv.Set(ctx, store.KeyBookmarksPlain, sampleTree()))

	require.NoError(t, env.svc.Disconnect(ctx))

	var v any
	for _, key := range []store.Key{
		store.KeySyncInfo, store.KeyLastUpdated, store.KeyBookmarks,
		store.KeyBookmarksPlain, store.KeyRemovedSync,
	} {
		assert.ErrorIs(t, env.kv.Get(ctx, key, &v), store.ErrKeyNotFound, key)
	}
	assert.False(t, env.enabled(t))
}
