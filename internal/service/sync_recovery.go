// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/models"
	"golang.org/x/mod/semver"
)

// handleFailedSync applies the recovery policy to a failed request and
// returns the error its handle was settled with. A request failed by lost
// connectivity is put back at the head of the queue instead, with its handle
// still pending.
func (s *syncService) handleFailedSync(ctx context.Context, item *queuedSync, err error) error {
	log := s.logger.WithSyncID(item.request.ID)

	if errors.Is(err, app.ErrNetworkConnection) && item.request.Type != models.SyncTypeLocal {
		s.mu.Lock()
		s.queue.pushFront(item)
		s.mu.Unlock()

		log.Warn().Err(err).
			Str("func", "syncService.handleFailedSync").
			Str("type", string(item.request.Type)).
			Msg("remote service unreachable, sync requeued")

		s.restoreStatus(ctx)
		return app.Wrap(app.ErrSyncUncommitted, err)
	}

	syncErr := err
	if !app.IsSyncError(syncErr) {
		syncErr = app.Wrap(app.ErrSyncFailed, err)
	}

	log.Err(syncErr).
		Str("func", "syncService.handleFailedSync").
		Str("type", string(item.request.Type)).
		Str("error_name", app.NameOf(syncErr)).
		Msg("sync failed")
	s.reporter.Report(ctx, syncErr)

	enabled, enabledErr := s.IsSyncEnabled(ctx)
	if enabledErr != nil {
		log.Err(enabledErr).Str("func", "syncService.handleFailedSync").Msg("failed to read sync enabled flag")
	}

	if enabled {
		switch {
		case errors.Is(syncErr, app.ErrSyncNotFound):
			if rerr := s.SetSyncRemoved(ctx); rerr != nil {
				log.Err(rerr).Str("func", "syncService.handleFailedSync").Msg("failed to record removed sync")
			}

		case item.request.Type != models.SyncTypeLocal:
			s.mu.Lock()
			dropped := s.queue.clear()
			s.mu.Unlock()
			s.settleDropped(dropped)

			if app.IsRefreshError(syncErr) {
				if qerr := s.queueRefresh(ctx); qerr != nil {
					syncErr = qerr
				}
			}
		}

		if app.IsDisableError(syncErr) {
			if derr := s.DisableSync(ctx); derr != nil {
				log.Err(derr).Str("func", "syncService.handleFailedSync").Msg("failed to disable sync")
			}
		}
	}

	item.completion.resolve(syncErr)
	s.restoreStatus(ctx)
	return syncErr
}

// queueRefresh queues a local resync from scratch. It is processed once the
// failed batch has been cleaned up.
func (s *syncService) queueRefresh(ctx context.Context) error {
	if _, err := s.QueueSync(ctx, models.SyncRequest{
		Type:       models.SyncTypeLocal,
		ChangeInfo: &models.ChangeInfo{Type: "refresh"},
	}, false); err != nil {
		return err
	}

	s.mu.Lock()
	s.pendingRun = true
	s.mu.Unlock()

	s.logger.Info().Str("func", "syncService.queueRefresh").Msg("local resync queued")
	return nil
}

// checkSyncVersionIsSupported fails when the remote payload was written by a
// newer client.
func (s *syncService) checkSyncVersionIsSupported(ctx context.Context, syncID string) error {
	remote, err := s.remote.GetVersion(ctx, syncID)
	if err != nil {
		return err
	}
	if remote == "" {
		remote = "0"
	}

	if semver.Compare(config.CanonicalVersion(remote), config.CanonicalVersion(s.appVersion)) > 0 {
		return fmt.Errorf("%w: remote %s, client %s", app.ErrSyncVersionNotSupported, remote, s.appVersion)
	}
	return nil
}
