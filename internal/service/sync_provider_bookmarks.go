// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// BookmarksProviderName identifies the bookmarks provider in results.
const BookmarksProviderName = "bookmarks"

type bookmarkSyncProvider struct {
	tree   NativeTree
	remote adapter.RemoteService
	cipher PayloadCipher
	cache  *bookmarkCache
	store  store.KeyValueStore

	logger *logger.Logger
}

// NewBookmarkSyncProvider returns the provider syncing the native bookmark
// tree with the remote payload.
func NewBookmarkSyncProvider(tree NativeTree, remote adapter.RemoteService, cipher PayloadCipher, kv store.KeyValueStore, logger *logger.Logger) SyncProvider {
	return &bookmarkSyncProvider{
		tree:   tree,
		remote: remote,
		cipher: cipher,
		cache:  newBookmarkCache(kv),
		store:  kv,
		logger: logger,
	}
}

func (p *bookmarkSyncProvider) Name() string {
	return BookmarksProviderName
}

func (p *bookmarkSyncProvider) Enable(_ context.Context) error {
	p.logger.Debug().Str("func", "bookmarkSyncProvider.Enable").Msg("bookmarks sync enabled")
	return nil
}

// Disable drops the cached tree so the next enable starts from scratch.
func (p *bookmarkSyncProvider) Disable(ctx context.Context) error {
	if err := p.cache.Clear(ctx); err != nil {
		return fmt.Errorf("clear bookmarks cache: %w", err)
	}
	return nil
}

func (p *bookmarkSyncProvider) ProcessSync(ctx context.Context, req models.SyncRequest) (models.ProcessResult, error) {
	switch req.Type {
	case models.SyncTypeLocal:
		return p.processLocal(ctx, req)
	case models.SyncTypeRemote:
		return p.processRemote(ctx, false)
	case models.SyncTypeUpgrade:
		return p.processRemote(ctx, true)
	default:
		return models.ProcessResult{}, fmt.Errorf("%w: %q", ErrInvalidSyncType, req.Type)
	}
}

// processLocal takes the supplied snapshot, or the native tree when there is
// none, and asks for a remote write if it differs from what was committed.
func (p *bookmarkSyncProvider) processLocal(ctx context.Context, req models.SyncRequest) (models.ProcessResult, error) {
	tree := req.Bookmarks
	if tree != nil {
		if err := p.tree.Write(ctx, tree); err != nil {
			return models.ProcessResult{}, asNativeError(app.ErrFailedCreateNativeBookmarks, err)
		}
	} else {
		var err error
		if tree, err = p.tree.Read(ctx); err != nil {
			return models.ProcessResult{}, asNativeError(app.ErrFailedGetNativeBookmarks, err)
		}
	}

	cached, err := p.cache.Bookmarks(ctx)
	if err != nil {
		return models.ProcessResult{}, err
	}

	changed := !sameTree(tree, cached)
	p.logger.Debug().
		Str("func", "bookmarkSyncProvider.processLocal").
		Str("sync_id", req.ID).
		Int("bookmarks", models.CountBookmarks(tree)).
		Bool("changed", changed).
		Msg("local bookmarks processed")

	return models.ProcessResult{Data: tree, UpdateRemote: changed}, nil
}

// processRemote replaces the native tree with the remote payload. An
// upgrade rewrites the payload in the current schema version.
func (p *bookmarkSyncProvider) processRemote(ctx context.Context, upgrade bool) (models.ProcessResult, error) {
	tree, err := p.pullRemote(ctx)
	if err != nil {
		return models.ProcessResult{}, err
	}
	return models.ProcessResult{Data: tree, UpdateRemote: upgrade}, nil
}

// HandleUpdateRemoteFailed re-reads the remote state into the native tree
// when the remote rejected the write because it changed in the meantime.
func (p *bookmarkSyncProvider) HandleUpdateRemoteFailed(ctx context.Context, err error, lastData []models.Bookmark, req models.SyncRequest) error {
	if !errors.Is(err, app.ErrDataOutOfSync) {
		return nil
	}

	p.logger.Warn().
		Str("func", "bookmarkSyncProvider.HandleUpdateRemoteFailed").
		Str("sync_id", req.ID).
		Int("discarded_bookmarks", models.CountBookmarks(lastData)).
		Msg("remote changed during sync, refreshing local bookmarks")

	if err := p.cache.Clear(ctx); err != nil {
		return err
	}
	_, pullErr := p.pullRemote(ctx)
	return pullErr
}

func (p *bookmarkSyncProvider) pullRemote(ctx context.Context) ([]models.Bookmark, error) {
	info, err := loadSyncInfo(ctx, p.store, true)
	if err != nil {
		return nil, err
	}

	resp, err := p.remote.GetBookmarks(ctx, info.ID)
	if err != nil {
		return nil, err
	}

	tree, err := p.cipher.Decrypt(ctx, resp.Bookmarks)
	if err != nil {
		return nil, err
	}

	if err := p.tree.Write(ctx, tree); err != nil {
		return nil, asNativeError(app.ErrFailedCreateNativeBookmarks, err)
	}

	if resp.LastUpdated != "" {
		if err := p.store.Set(ctx, store.KeyLastUpdated, resp.LastUpdated); err != nil {
			return nil, fmt.Errorf("store last updated: %w", err)
		}
	}

	return tree, nil
}

// asNativeError keeps taxonomy errors reported by the native tree and tags
// anything else with kind.
func asNativeError(kind *app.SyncError, err error) error {
	if app.IsSyncError(err) {
		return err
	}
	return app.Wrap(kind, err)
}

// sameTree compares trees by their JSON form, so nil and empty slices match.
func sameTree(a, b []models.Bookmark) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}
