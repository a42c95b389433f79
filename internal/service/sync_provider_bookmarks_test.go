// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/mock"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type providerFixture struct {
	provider SyncProvider
	tree     *mock.MockNativeTree
	remote   *mock.MockRemoteService
	cipher   *mock.MockPayloadCipher
	kv       store.KeyValueStore
}

func newProviderFixture(t *testing.T) *providerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &providerFixture{
		tree:   mock.NewMockNativeTree(ctrl),
		remote: mock.NewMockRemoteService(ctrl),
		cipher: mock.NewMockPayloadCipher(ctrl),
		kv:     store.NewMemoryKeyValueStore(),
	}
	require.NoError(t, f.kv.Set(context.Background(), store.KeySyncInfo, models.SyncInfo{ID: testSyncID, Password: testPassword}))
	f.provider = NewBookmarkSyncProvider(f.tree, f.remote, f.cipher, f.kv, logger.Nop())
	return f
}

func TestBookmarkProvider_LocalReadsNativeTree(t *testing.T) {
	tests := []struct {
		name   string
		cached []models.Bookmark
		want   bool
	}{
		{name: "changed", cached: nil, want: true},
		{name: "unchanged", cached: sampleTree(), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProviderFixture(t)
			ctx := context.Background()
			if tt.cached != nil {
				require.NoError(t, f.kv.Set(ctx, store.KeyBookmarksPlain, tt.cached))
			}
			f.tree.EXPECT().Read(gomock.Any()).Return(sampleTree(), nil)

			res, err := f.provider.ProcessSync(ctx, models.SyncRequest{Type: models.SyncTypeLocal})
			require.NoError(t, err)
			assert.Equal(t, sampleTree(), res.Data)
			assert.Equal(t, tt.want, res.UpdateRemote)
		})
	}
}

func TestBookmarkProvider_LocalWritesSnapshot(t *testing.T) {
	f := newProviderFixture(t)
	f.tree.EXPECT().Write(gomock.Any(), sampleTree()).Return(nil)

	res, err := f.provider.ProcessSync(context.Background(), models.SyncRequest{
		Type:      models.SyncTypeLocal,
		Bookmarks: sampleTree(),
	})
	require.NoError(t, err)
	assert.True(t, res.UpdateRemote)
}

func TestBookmarkProvider_LocalReadFailure(t *testing.T) {
	f := newProviderFixture(t)
	f.tree.EXPECT().Read(gomock.Any()).Return(nil, errors.New("permission denied"))

	_, err := f.provider.ProcessSync(context.Background(), models.SyncRequest{Type: models.SyncTypeLocal})
	assert.ErrorIs(t, err, app.ErrFailedGetNativeBookmarks)
}

func TestBookmarkProvider_RemotePullsAndWrites(t *testing.T) {
	f := newProviderFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.remote.EXPECT().GetBookmarks(gomock.Any(), testSyncID).
			Return(models.GetBookmarksResponse{Bookmarks: "sealed", LastUpdated: "2026-03-01T00:00:00Z"}, nil),
		f.cipher.EXPECT().Decrypt(gomock.Any(), "sealed").Return(sampleTree(), nil),
		f.tree.EXPECT().Write(gomock.Any(), sampleTree()).Return(nil),
	)

	res, err := f.provider.ProcessSync(ctx, models.SyncRequest{Type: models.SyncTypeRemote})
	require.NoError(t, err)
	assert.Equal(t, sampleTree(), res.Data)
	assert.False(t, res.UpdateRemote)

	var lastUpdated string
	require.NoError(t, f.kv.Get(ctx, store.KeyLastUpdated, &lastUpdated))
	assert.Equal(t, "2026-03-01T00:00:00Z", lastUpdated)
}

func TestBookmarkProvider_UpgradeRequestsRemoteWrite(t *testing.T) {
	f := newProviderFixture(t)

	f.remote.EXPECT().GetBookmarks(gomock.Any(), testSyncID).Return(models.GetBookmarksResponse{}, nil)
	f.cipher.EXPECT().Decrypt(gomock.Any(), "").Return(nil, nil)
	f.tree.EXPECT().Write(gomock.Any(), gomock.Nil()).Return(nil)

	res, err := f.provider.ProcessSync(context.Background(), models.SyncRequest{Type: models.SyncTypeUpgrade})
	require.NoError(t, err)
	assert.True(t, res.UpdateRemote)
}

func TestBookmarkProvider_RemoteFailurePropagates(t *testing.T) {
	f := newProviderFixture(t)
	notFound := app.Wrap(app.ErrSyncNotFound, errors.New("404"))
	f.remote.EXPECT().GetBookmarks(gomock.Any(), testSyncID).Return(models.GetBookmarksResponse{}, notFound)

	_, err := f.provider.ProcessSync(context.Background(), models.SyncRequest{Type: models.SyncTypeRemote})
	assert.ErrorIs(t, err, app.ErrSyncNotFound)
}

func TestBookmarkProvider_NativeWriteFailure(t *testing.T) {
	f := newProviderFixture(t)
	f.remote.EXPECT().GetBookmarks(gomock.Any(), testSyncID).Return(models.GetBookmarksResponse{Bookmarks: "sealed"}, nil)
	f.cipher.EXPECT().Decrypt(gomock.Any(), "sealed").Return(sampleTree(), nil)
	f.tree.EXPECT().Write(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := f.provider.ProcessSync(context.Background(), models.SyncRequest{Type: models.SyncTypeRemote})
	assert.ErrorIs(t, err, app.ErrFailedCreateNativeBookmarks)
}

func TestBookmarkProvider_RejectsCancel(t *testing.T) {
	f := newProviderFixture(t)
	_, err := f.provider.ProcessSync(context.Background(), models.SyncRequest{Type: models.SyncTypeCancel})
	assert.ErrorIs(t, err, ErrInvalidSyncType)
}

func TestBookmarkProvider_HandleUpdateRemoteFailed(t *testing.T) {
	t.Run("out of sync refreshes from remote", func(t *testing.T) {
		f := newProviderFixture(t)
		ctx := context.Background()
		require.NoError(t, f.kv.Set(ctx, store.KeyBookmarksPlain, sampleTree()))

		f.remote.EXPECT().GetBookmarks(gomock.Any(), testSyncID).Return(models.GetBookmarksResponse{Bookmarks: "sealed"}, nil)
		f.cipher.EXPECT().Decrypt(gomock.Any(), "sealed").Return(nil, nil)
		f.tree.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)

		err := f.provider.HandleUpdateRemoteFailed(ctx, app.ErrDataOutOfSync, sampleTree(), models.SyncRequest{Type: models.SyncTypeLocal})
		require.NoError(t, err)

		var cached []models.Bookmark
		assert.ErrorIs(t, f.kv.Get(ctx, store.KeyBookmarksPlain, &cached), store.ErrKeyNotFound)
	})

	t.Run("other errors are ignored", func(t *testing.T) {
		f := newProviderFixture(t)
		err := f.provider.HandleUpdateRemoteFailed(context.Background(), app.ErrNetworkConnection, nil, models.SyncRequest{})
		assert.NoError(t, err)
	})
}

func TestBookmarkProvider_DisableClearsCache(t *testing.T) {
	f := newProviderFixture(t)
	ctx := context.Background()
	require.NoError(t, f.kv.Set(ctx, store.KeyBookmarks, "sealed"))
	require.NoError(t, f.kv.Set(ctx, store.KeyBookmarksPlain, sampleTree()))

	require.NoError(t, f.provider.Disable(ctx))

	var payload string
	assert.ErrorIs(t, f.kv.Get(ctx, store.KeyBookmarks, &payload), store.ErrKeyNotFound)
}
