// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_MemoryDSN(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: MemoryDSN}}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s.KeyValueStore)

	require.NoError(t, s.KeyValueStore.Set(context.Background(), KeySyncEnabled, true))
	assert.NoError(t, s.Close())
}
