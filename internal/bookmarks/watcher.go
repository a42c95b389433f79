// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bookmarks

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst of writes to
// settle before queuing a sync.
const DefaultDebounce = 500 * time.Millisecond

// Change types reported in models.ChangeInfo.
const (
	ChangeCreated  = "created"
	ChangeModified = "modified"
	ChangeRemoved  = "removed"
)

// SyncQueuer is the part of the sync engine the watcher needs.
type SyncQueuer interface {
	IsSyncEnabled(ctx context.Context) (bool, error)
	EnqueueSync(ctx context.Context, req models.SyncRequest) (string, error)
}

// Watcher queues a local sync whenever the bookmarks file is edited by
// someone other than its FileTree. Nothing is queued while sync is
// disabled.
type Watcher struct {
	tree     *FileTree
	engine   SyncQueuer
	debounce time.Duration

	logger *logger.Logger
}

// NewWatcher returns a watcher for tree.
func NewWatcher(tree *FileTree, engine SyncQueuer, debounce time.Duration, logger *logger.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{tree: tree, engine: engine, debounce: debounce, logger: logger}
}

// Run watches the directory holding the bookmarks file until ctx is done.
// The directory is watched rather than the file because editors and
// FileTree.Write replace the file by renaming.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.tree.Path())
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.logger.Info().
		Str("func", "Watcher.Run").
		Str("path", w.tree.Path()).
		Dur("debounce", w.debounce).
		Msg("watching bookmarks file")

	var (
		timer  *time.Timer
		fire   <-chan time.Time
		change string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			op, relevant := w.classify(event)
			if !relevant {
				continue
			}
			change = op
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Err(err).Str("func", "Watcher.Run").Msg("file watcher error")

		case <-fire:
			fire = nil
			w.onChange(ctx, change)
		}
	}
}

func (w *Watcher) classify(event fsnotify.Event) (string, bool) {
	if filepath.Clean(event.Name) != w.tree.Path() {
		return "", false
	}
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return ChangeRemoved, true
	case event.Has(fsnotify.Create):
		return ChangeCreated, true
	case event.Has(fsnotify.Write):
		return ChangeModified, true
	default:
		return "", false
	}
}

func (w *Watcher) onChange(ctx context.Context, change string) {
	changed, err := w.tree.Changed()
	if err != nil {
		w.logger.Err(err).Str("func", "Watcher.onChange").Msg("failed to inspect bookmarks file")
		return
	}
	if !changed {
		return
	}

	enabled, err := w.engine.IsSyncEnabled(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "Watcher.onChange").Msg("failed to read sync enabled flag")
		return
	}
	if !enabled {
		w.logger.Debug().Str("func", "Watcher.onChange").Msg("bookmarks changed while sync is disabled")
		return
	}

	id, err := w.engine.EnqueueSync(ctx, models.SyncRequest{
		Type:       models.SyncTypeLocal,
		ChangeInfo: &models.ChangeInfo{Type: change, Source: w.tree.Path()},
	})
	if err != nil {
		w.logger.Err(err).Str("func", "Watcher.onChange").Msg("failed to queue local sync")
		return
	}
	w.logger.Info().
		Str("func", "Watcher.onChange").
		Str("sync_id", id).
		Str("change", change).
		Msg("bookmarks changed, local sync queued")
}
