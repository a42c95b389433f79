// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
)

type sqlKeyValueStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLKeyValueStore returns a KeyValueStore backed by the kv_store table.
func NewSQLKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	return &sqlKeyValueStore{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqlKeyValueStore) Get(ctx context.Context, key Key, dst any) error {
	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw []byte
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqlKeyValueStore.Get").
			Str("key", string(key)).
			Msg("failed to read value")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return decodeValue(raw, dst)
}

func (s *sqlKeyValueStore) Set(ctx context.Context, key Key, value any) error {
	raw, err := encodeValue(value)
	if err != nil {
		return err
	}

	query, args, err := buildSetValueQuery(key, raw, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlKeyValueStore.Set").
			Str("key", string(key)).
			Msg("failed to upsert value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlKeyValueStore) Remove(ctx context.Context, keys ...Key) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := buildRemoveValuesQuery(keys)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlKeyValueStore.Remove").
			Int("keys", len(keys)).
			Msg("failed to delete values")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
