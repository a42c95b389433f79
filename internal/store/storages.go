// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
)

// MemoryDSN selects the in-memory store.
const MemoryDSN = ":memory:"

// Storages groups the persistence backends used by the sync engine.
type Storages struct {
	// KeyValueStore holds the durable sync state.
	KeyValueStore KeyValueStore

	db *DB
}

// NewStorages opens the key-value store described by cfg. A file DSN opens
// SQLite and applies migrations; MemoryDSN keeps everything in memory.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		return &Storages{KeyValueStore: NewMemoryKeyValueStore()}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		KeyValueStore: NewSQLKeyValueStore(db, logger),
		db:            db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
