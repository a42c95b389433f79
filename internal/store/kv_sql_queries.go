// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const kvTable = "kv_store"

func buildGetValueQuery(key Key) (string, []any, error) {
	return sq.Select("value").
		From(kvTable).
		Where(sq.Eq{"key": string(key)}).
		ToSql()
}

func buildSetValueQuery(key Key, value []byte, now time.Time) (string, []any, error) {
	return sq.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(string(key), value, now.UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildRemoveValuesQuery(keys []Key) (string, []any, error) {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}

	return sq.Delete(kvTable).
		Where(sq.Eq{"key": names}).
		ToSql()
}
