// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

// memoryKeyValueStore keeps encoded values in a map. Values are stored
// encoded so callers never share memory with the store.
type memoryKeyValueStore struct {
	mu    sync.RWMutex
	items map[Key][]byte
}

// NewMemoryKeyValueStore returns a KeyValueStore that lives for the process
// lifetime only.
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{items: make(map[Key][]byte)}
}

func (s *memoryKeyValueStore) Get(_ context.Context, key Key, dst any) error {
	s.mu.RLock()
	raw, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return ErrKeyNotFound
	}
	return decodeValue(raw, dst)
}

func (s *memoryKeyValueStore) Set(_ context.Context, key Key, value any) error {
	raw, err := encodeValue(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.items[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *memoryKeyValueStore) Remove(_ context.Context, keys ...Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.items, k)
	}
	return nil
}
