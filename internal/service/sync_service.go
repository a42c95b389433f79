// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/status"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
	"golang.org/x/sync/errgroup"
)

// DefaultInitialCheckDelay postpones the first update check after start.
const DefaultInitialCheckDelay = 3 * time.Second

// SyncServiceDeps are the collaborators of the engine.
type SyncServiceDeps struct {
	Store     store.KeyValueStore
	Remote    adapter.RemoteService
	Cipher    PayloadCipher
	Providers []SyncProvider
	Status    status.Sink
	Reporter  app.ErrorReporter
	Job       SyncJob

	// AppVersion is the payload schema version this client writes.
	AppVersion        string
	InitialCheckDelay time.Duration
}

type syncService struct {
	store     store.KeyValueStore
	remote    adapter.RemoteService
	cipher    PayloadCipher
	cache     *bookmarkCache
	providers []SyncProvider
	status    status.Sink
	reporter  app.ErrorReporter
	job       SyncJob
	ids       *utils.UUIDGenerator

	appVersion        string
	initialCheckDelay time.Duration

	// mu guards the queue, the current sync and the rerun flag. It is never
	// held across blocking I/O.
	mu         sync.Mutex
	queue      *syncQueue
	current    *queuedSync
	pendingRun bool
	baseCtx    context.Context

	logger *logger.Logger
}

// NewSyncService constructs the engine. It is idle until Start is called.
func NewSyncService(deps SyncServiceDeps, logger *logger.Logger) SyncService {
	delay := deps.InitialCheckDelay
	if delay <= 0 {
		delay = DefaultInitialCheckDelay
	}
	reporter := deps.Reporter
	if reporter == nil {
		reporter = app.NewLogReporter(logger)
	}

	return &syncService{
		store:             deps.Store,
		remote:            deps.Remote,
		cipher:            deps.Cipher,
		cache:             newBookmarkCache(deps.Store),
		providers:         deps.Providers,
		status:            deps.Status,
		reporter:          reporter,
		job:               deps.Job,
		ids:               utils.NewUUIDGenerator(),
		appVersion:        deps.AppVersion,
		initialCheckDelay: delay,
		queue:             &syncQueue{},
		baseCtx:           context.Background(),
		logger:            logger,
	}
}

// Start implements SyncService.
func (s *syncService) Start(ctx context.Context) error {
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()

	enabled, err := s.IsSyncEnabled(ctx)
	if err != nil {
		return err
	}
	s.restoreStatus(ctx)

	if !enabled {
		s.logger.Info().Str("func", "syncService.Start").Msg("sync disabled, update checks not started")
		return nil
	}

	s.startUpdateChecks()
	go func() {
		select {
		case <-ctx.Done():
		case <-time.After(s.initialCheckDelay):
			s.job.Trigger()
		}
	}()

	s.logger.Info().Str("func", "syncService.Start").
		Dur("initial_delay", s.initialCheckDelay).
		Msg("sync enabled, update checks started")
	return nil
}

// Shutdown implements SyncService.
func (s *syncService) Shutdown() {
	s.job.Shutdown()
}

// QueueSync implements SyncService. When sync is disabled, or req is a
// Cancel, everything queued before is dropped; the dropped handles settle
// with app.ErrSyncCancelled. A pull, an upgrade or a push of the native tree
// queued on a disabled sync enables it once the request succeeded.
func (s *syncService) QueueSync(ctx context.Context, req models.SyncRequest, runSync bool) (*Completion, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSyncType, req.Type)
	}

	enabled, err := s.IsSyncEnabled(ctx)
	if err != nil {
		return nil, err
	}

	item := &queuedSync{
		request:    req,
		completion: newCompletion(),
		enable:     !enabled && enablesSync(req),
	}
	if item.request.ID == "" {
		item.request.ID = s.ids.Generate()
	}

	s.mu.Lock()
	var dropped []*queuedSync
	if !enabled || req.Type == models.SyncTypeCancel {
		dropped = s.queue.clear()
	}
	s.queue.push(item)
	queued := s.queue.Len()
	s.mu.Unlock()

	s.settleDropped(dropped)

	log := s.logger.WithSyncID(item.request.ID)
	ev := log.Info().
		Str("func", "syncService.QueueSync").
		Str("type", string(req.Type)).
		Int("queue_length", queued)
	if req.ChangeInfo != nil {
		ev = ev.Str("change", req.ChangeInfo.Type)
	}
	ev.Msg("sync queued")

	if runSync {
		go func() {
			if err := s.ProcessSyncQueue(context.WithoutCancel(ctx)); err != nil {
				log.Debug().Err(err).Str("func", "syncService.QueueSync").Msg("queued sync failed")
			}
		}()
	}

	return item.completion, nil
}

// EnqueueSync implements SyncService.
func (s *syncService) EnqueueSync(ctx context.Context, req models.SyncRequest) (string, error) {
	if req.ID == "" {
		req.ID = s.ids.Generate()
	}
	if _, err := s.QueueSync(ctx, req, true); err != nil {
		return "", err
	}
	return req.ID, nil
}

// SubmitSync implements SyncService. With runSync the queue is processed
// on the caller's goroutine and a processing error is returned as is.
func (s *syncService) SubmitSync(ctx context.Context, req models.SyncRequest, runSync bool) error {
	completion, err := s.QueueSync(ctx, req, false)
	if err != nil {
		return err
	}

	if runSync {
		if err := s.ProcessSyncQueue(ctx); err != nil {
			return err
		}
	}

	return completion.Wait(ctx)
}

func enablesSync(req models.SyncRequest) bool {
	switch req.Type {
	case models.SyncTypeRemote, models.SyncTypeUpgrade:
		return true
	case models.SyncTypeLocal:
		return req.Bookmarks == nil
	default:
		return false
	}
}

// ProcessSyncQueue implements SyncService. It returns immediately when a
// sync is in flight; the running loop picks up what was queued meanwhile.
// Processing is detached from ctx cancellation.
func (s *syncService) ProcessSyncQueue(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)
	for {
		err := s.processBatch(ctx)

		s.mu.Lock()
		rerun := s.pendingRun && s.current == nil && s.queue.Len() > 0
		s.pendingRun = false
		s.mu.Unlock()

		if !rerun {
			return err
		}
		if err != nil {
			s.logger.Debug().Err(err).Str("func", "syncService.ProcessSyncQueue").Msg("batch failed, processing requests queued meanwhile")
		}
	}
}

// processBatch drains the queue into the providers, then commits the result
// once.
func (s *syncService) processBatch(ctx context.Context) error {
	s.mu.Lock()
	if s.current != nil {
		if s.queue.Len() > 0 {
			s.pendingRun = true
		}
		s.mu.Unlock()
		return nil
	}
	item, ok := s.queue.dequeueNext()
	if !ok {
		s.mu.Unlock()
		return nil
	}
	s.current = item
	s.mu.Unlock()

	s.job.Stop()

	var (
		lastData          []models.Bookmark
		updateRemote      bool
		updateSyncVersion bool
		cancelled         bool
	)

	for {
		log := s.logger.WithSyncID(item.request.ID)
		log.Info().
			Str("func", "syncService.processBatch").
			Str("type", string(item.request.Type)).
			Bool("background", utils.IsBackgroundSync(ctx)).
			Int("waiting", s.QueueLength()).
			Msg("processing sync")

		s.status.SetStatus(ctx, syncingStatus(item.request.Type))

		if item.request.Type == models.SyncTypeCancel {
			if err := s.DisableSync(ctx); err != nil {
				return s.finish(ctx, s.handleFailedSync(ctx, item, err))
			}
			item.completion.resolve(nil)
			cancelled = true
			break
		}

		if item.request.Type == models.SyncTypeUpgrade {
			updateSyncVersion = true
		}

		req := item.request
		if req.Bookmarks == nil && lastData != nil {
			req.Bookmarks = lastData
		}

		results, err := s.dispatch(ctx, req)
		if err != nil {
			return s.finish(ctx, s.handleFailedSync(ctx, item, err))
		}
		for _, p := range s.providers {
			r := results[p.Name()]
			if r.UpdateRemote {
				updateRemote = true
			}
			if p.Name() == BookmarksProviderName {
				lastData = r.Data
			}
		}

		s.mu.Lock()
		next, ok := s.queue.dequeueNext()
		if ok {
			s.current = next
		}
		s.mu.Unlock()
		if !ok {
			break
		}

		// The last request of the batch settles after the commit.
		s.settle(ctx, item)
		item = next
	}

	if cancelled {
		return s.finish(ctx, nil)
	}

	if err := s.commit(ctx, item, lastData, updateRemote, updateSyncVersion); err != nil {
		return s.finish(ctx, s.handleFailedSync(ctx, item, err))
	}
	s.settle(ctx, item)
	return s.finish(ctx, nil)
}

// settle resolves a processed request as succeeded, enabling sync first
// when the request was queued to do so.
func (s *syncService) settle(ctx context.Context, item *queuedSync) {
	if !item.enable {
		item.completion.resolve(nil)
		return
	}

	log := s.logger.WithSyncID(item.request.ID)
	if err := s.EnableSync(ctx); err != nil {
		log.Err(err).Str("func", "syncService.settle").Msg("failed to enable sync")
		item.completion.resolve(err)
		return
	}
	log.Info().Str("func", "syncService.settle").Msg("sync enabled")
	item.completion.resolve(nil)
}

// dispatch runs every provider on req in parallel.
func (s *syncService) dispatch(ctx context.Context, req models.SyncRequest) (map[string]models.ProcessResult, error) {
	if len(s.providers) == 0 {
		return nil, ErrNoProviders
	}

	results := make([]models.ProcessResult, len(s.providers))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range s.providers {
		g.Go(func() error {
			r, err := p.ProcessSync(gctx, req)
			if err != nil {
				return fmt.Errorf("provider %s: %w", p.Name(), err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byName := make(map[string]models.ProcessResult, len(results))
	for i, p := range s.providers {
		byName[p.Name()] = results[i]
	}
	return byName, nil
}

// commit encrypts the processed tree, writes it to the remote when any
// provider asked for it and refreshes the local cache.
func (s *syncService) commit(ctx context.Context, item *queuedSync, data []models.Bookmark, updateRemote, updateSyncVersion bool) error {
	log := s.logger.WithSyncID(item.request.ID)

	encrypted, err := s.cipher.Encrypt(ctx, data)
	if err != nil {
		return err
	}

	if !updateRemote {
		log.Info().Str("func", "syncService.commit").Msg("no changes made, skipping remote update")
		return s.cache.Update(ctx, data, encrypted)
	}

	info, err := loadSyncInfo(ctx, s.store, true)
	if err != nil {
		return err
	}
	if err := s.checkSyncVersionIsSupported(ctx, info.ID); err != nil {
		return err
	}

	lastUpdated, err := loadLastUpdated(ctx, s.store)
	if err != nil {
		return err
	}

	update := models.UpdateBookmarksRequest{
		ID:          info.ID,
		Bookmarks:   encrypted,
		LastUpdated: lastUpdated,
	}
	if updateSyncVersion {
		update.SyncVersion = s.appVersion
	}

	resp, err := s.remote.UpdateBookmarks(ctx, update)
	if err != nil {
		for _, p := range s.providers {
			if herr := p.HandleUpdateRemoteFailed(ctx, err, data, item.request); herr != nil {
				log.Warn().Err(herr).
					Str("func", "syncService.commit").
					Str("provider", p.Name()).
					Msg("provider failed to handle remote update failure")
			}
		}
		return err
	}

	if err := s.store.Set(ctx, store.KeyLastUpdated, resp.LastUpdated); err != nil {
		return fmt.Errorf("store last updated: %w", err)
	}
	if updateSyncVersion {
		info.Version = s.appVersion
		if err := s.store.Set(ctx, store.KeySyncInfo, info); err != nil {
			return fmt.Errorf("store sync version: %w", err)
		}
	}
	log.Info().Str("func", "syncService.commit").
		Str("last_updated", resp.LastUpdated).
		Msg("remote bookmarks updated")

	return s.cache.Update(ctx, data, encrypted)
}

// finish clears the current sync and resumes update checks if sync is
// still enabled.
func (s *syncService) finish(ctx context.Context, err error) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	enabled, enabledErr := s.IsSyncEnabled(ctx)
	if enabledErr != nil {
		s.logger.Err(enabledErr).Str("func", "syncService.finish").Msg("failed to read sync enabled flag")
	}
	if enabled {
		s.startUpdateChecks()
	}
	if err == nil {
		s.restoreStatus(ctx)
	}
	return err
}

// ExecuteSync implements SyncService. It is what the update check runs.
func (s *syncService) ExecuteSync(ctx context.Context) error {
	enabled, err := s.IsSyncEnabled(ctx)
	if err != nil {
		return err
	}
	if !enabled {
		return app.ErrSyncDisabled
	}

	s.mu.Lock()
	busy := s.current != nil
	empty := s.queue.Len() == 0
	s.mu.Unlock()
	if busy {
		return nil
	}

	if empty {
		updates, err := s.CheckForUpdates(ctx)
		if err != nil {
			s.logger.Debug().Err(err).Str("func", "syncService.ExecuteSync").Msg("update check failed, syncing anyway")
			updates = true
		}
		if updates {
			if _, err := s.QueueSync(ctx, models.SyncRequest{Type: models.SyncTypeRemote}, false); err != nil {
				return err
			}
		}
	}

	return s.ProcessSyncQueue(ctx)
}

// CheckForUpdates implements SyncService. Updates are available when the
// remote timestamp differs from the one stored at the last sync, or when
// none is stored.
func (s *syncService) CheckForUpdates(ctx context.Context) (bool, error) {
	info, err := loadSyncInfo(ctx, s.store, false)
	if err != nil {
		return false, err
	}
	stored, err := loadLastUpdated(ctx, s.store)
	if err != nil {
		return false, err
	}

	remote, err := s.remote.GetLastUpdated(ctx, info.ID)
	if err != nil {
		return false, err
	}

	updates := stored == "" || !sameInstant(stored, remote)
	if updates {
		s.logger.Info().Str("func", "syncService.CheckForUpdates").
			Str("local", stored).
			Str("remote", remote).
			Msg("updates available")
	}
	return updates, nil
}

// CheckSyncExists implements SyncService. A sync removed from the remote
// service is recorded and sync disabled; any other failure is inconclusive
// and reported as existing.
func (s *syncService) CheckSyncExists(ctx context.Context) (bool, error) {
	enabled, err := s.IsSyncEnabled(ctx)
	if err != nil {
		return false, err
	}
	if !enabled {
		return false, app.ErrSyncDisabled
	}

	info, err := loadSyncInfo(ctx, s.store, false)
	if err != nil {
		return false, err
	}

	if _, err := s.remote.GetLastUpdated(ctx, info.ID); err != nil {
		if errors.Is(err, app.ErrSyncNotFound) {
			if rerr := s.SetSyncRemoved(ctx); rerr != nil {
				return false, rerr
			}
			return false, nil
		}
		return true, nil
	}
	return true, nil
}

// EnableSync implements SyncService.
func (s *syncService) EnableSync(ctx context.Context) error {
	if err := s.store.Remove(ctx, store.KeyRemovedSync); err != nil {
		return fmt.Errorf("remove removed sync: %w", err)
	}
	if err := s.store.Set(ctx, store.KeySyncEnabled, true); err != nil {
		return fmt.Errorf("store sync enabled: %w", err)
	}

	s.startUpdateChecks()

	for _, p := range s.providers {
		if err := p.Enable(ctx); err != nil {
			return fmt.Errorf("enable provider %s: %w", p.Name(), err)
		}
	}

	s.status.SetStatus(ctx, models.StatusIdleSynced)
	s.job.Trigger()
	return nil
}

// DisableSync implements SyncService. It is a no-op when sync is already
// disabled. The password is stripped from the stored SyncInfo; the id stays
// so the sync can be re-joined.
func (s *syncService) DisableSync(ctx context.Context) error {
	enabled, err := s.IsSyncEnabled(ctx)
	if err != nil {
		return err
	}
	if !enabled {
		return nil
	}

	s.job.Stop()

	var info models.SyncInfo
	switch err := s.store.Get(ctx, store.KeySyncInfo, &info); {
	case err == nil:
		if err := s.store.Set(ctx, store.KeySyncInfo, info.WithoutSecrets()); err != nil {
			return fmt.Errorf("strip sync password: %w", err)
		}
	case !errors.Is(err, store.ErrKeyNotFound):
		return fmt.Errorf("get sync info: %w", err)
	}

	if err := s.store.Remove(ctx, store.KeyLastUpdated); err != nil {
		return fmt.Errorf("remove last updated: %w", err)
	}
	if err := s.store.Set(ctx, store.KeySyncEnabled, false); err != nil {
		return fmt.Errorf("store sync enabled: %w", err)
	}

	for _, p := range s.providers {
		if err := p.Disable(ctx); err != nil {
			return fmt.Errorf("disable provider %s: %w", p.Name(), err)
		}
	}

	s.mu.Lock()
	dropped := s.queue.clear()
	s.mu.Unlock()
	s.settleDropped(dropped)

	s.status.SetStatus(ctx, models.StatusIdleNotSynced)
	s.logger.Info().Str("func", "syncService.DisableSync").Msg("sync disabled")
	return nil
}

// Connect implements SyncService. An empty info.ID creates a new remote
// sync and pushes the native tree to it; otherwise the existing sync is
// pulled. Sync is enabled once that first request succeeds.
func (s *syncService) Connect(ctx context.Context, info models.SyncInfo) error {
	if info.Password == "" {
		return app.ErrIncompleteSyncInfo
	}

	req := models.SyncRequest{Type: models.SyncTypeRemote}
	if info.ID == "" {
		created, err := s.remote.CreateSync(ctx, s.appVersion)
		if err != nil {
			return err
		}
		info.ID = created.ID
		info.Version = created.Version
		if info.Version == "" {
			info.Version = s.appVersion
		}
		if created.LastUpdated != "" {
			if err := s.store.Set(ctx, store.KeyLastUpdated, created.LastUpdated); err != nil {
				return fmt.Errorf("store last updated: %w", err)
			}
		}
		if err := s.cache.Clear(ctx); err != nil {
			return err
		}
		req.Type = models.SyncTypeLocal
	}

	if err := s.store.Set(ctx, store.KeySyncInfo, info); err != nil {
		return fmt.Errorf("store sync info: %w", err)
	}

	s.logger.Info().Str("func", "syncService.Connect").
		Str("sync_id", info.ID).
		Str("type", string(req.Type)).
		Msg("connecting to sync")

	return s.SubmitSync(ctx, req, true)
}

// Disconnect implements SyncService.
func (s *syncService) Disconnect(ctx context.Context) error {
	if err := s.DisableSync(ctx); err != nil {
		return err
	}
	if err := s.store.Remove(ctx,
		store.KeySyncInfo,
		store.KeyLastUpdated,
		store.KeyBookmarks,
		store.KeyBookmarksPlain,
		store.KeyRemovedSync,
	); err != nil {
		return fmt.Errorf("remove sync data: %w", err)
	}
	s.status.SetStatus(ctx, models.StatusIdleNotSynced)
	return nil
}

// SetSyncRemoved implements SyncService. It keeps the last known bookmarks
// in a RemovedSync record, disables sync and trims the stored SyncInfo to
// what is useful for a new sync.
func (s *syncService) SetSyncRemoved(ctx context.Context) error {
	bookmarks, err := s.cache.Bookmarks(ctx)
	if err != nil {
		return err
	}
	lastUpdated, err := loadLastUpdated(ctx, s.store)
	if err != nil {
		return err
	}
	var info models.SyncInfo
	if err := s.store.Get(ctx, store.KeySyncInfo, &info); err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		return fmt.Errorf("get sync info: %w", err)
	}

	removed := models.RemovedSync{
		Bookmarks:   bookmarks,
		LastUpdated: lastUpdated,
		SyncInfo:    info.Trimmed(),
	}
	if err := s.store.Set(ctx, store.KeyRemovedSync, removed); err != nil {
		return fmt.Errorf("store removed sync: %w", err)
	}
	s.logger.Warn().Str("func", "syncService.SetSyncRemoved").
		Str("sync_id", info.ID).
		Str("last_updated", lastUpdated).
		Msg("sync was not found on remote service")

	if err := s.DisableSync(ctx); err != nil {
		return err
	}
	return s.store.Set(ctx, store.KeySyncInfo, info.Trimmed())
}

// IsSyncEnabled implements SyncService.
func (s *syncService) IsSyncEnabled(ctx context.Context) (bool, error) {
	var enabled bool
	if err := s.store.Get(ctx, store.KeySyncEnabled, &enabled); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get sync enabled: %w", err)
	}
	return enabled, nil
}

// CurrentSync implements SyncService. It returns a copy of the request in
// flight, or nil.
func (s *syncService) CurrentSync() *models.SyncRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	req := s.current.request
	return &req
}

// QueueLength implements SyncService.
func (s *syncService) QueueLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}

// SyncSize implements SyncService. It is the byte size of the cached
// encrypted payload.
func (s *syncService) SyncSize(ctx context.Context) (int, error) {
	payload, err := s.cache.Encrypted(ctx)
	if err != nil {
		return 0, err
	}
	return len(payload), nil
}

func (s *syncService) startUpdateChecks() {
	s.mu.Lock()
	ctx := s.baseCtx
	s.mu.Unlock()
	s.job.Start(ctx, s.scheduledCheck)
}

func (s *syncService) scheduledCheck(ctx context.Context) error {
	err := s.ExecuteSync(utils.WithBackgroundSync(ctx))
	if errors.Is(err, app.ErrSyncDisabled) {
		return nil
	}
	return err
}

// restoreStatus shows the idle status matching the enabled flag.
func (s *syncService) restoreStatus(ctx context.Context) {
	enabled, err := s.IsSyncEnabled(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "syncService.restoreStatus").Msg("failed to read sync enabled flag")
	}
	if enabled {
		s.status.SetStatus(ctx, models.StatusIdleSynced)
		return
	}
	s.status.SetStatus(ctx, models.StatusIdleNotSynced)
}

func (s *syncService) settleDropped(dropped []*queuedSync) {
	for _, item := range dropped {
		if item.completion.resolve(app.ErrSyncCancelled) {
			s.logger.Debug().Str("func", "syncService.settleDropped").
				Str("sync_id", item.request.ID).
				Msg("queued sync dropped")
		}
	}
}

func syncingStatus(t models.SyncType) models.SyncStatus {
	if t == models.SyncTypeLocal {
		return models.StatusSyncingLocal
	}
	return models.StatusSyncingRemote
}
