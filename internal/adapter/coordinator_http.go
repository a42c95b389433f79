// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// StatusStreamPath is the websocket endpoint pushing status changes.
const StatusStreamPath = "/api/status/stream"

const messagesPath = "/api/messages/"

// CoordinatorClient sends command messages to the running sync daemon. It
// holds no sync state of its own.
type CoordinatorClient struct {
	client  *utils.HTTPClient
	baseURL string
	hashKey string

	logger *logger.Logger
}

// NewCoordinatorClient returns a client for the daemon listening on address.
// Every message is signed with hashKey.
func NewCoordinatorClient(address, hashKey string, timeout time.Duration, logger *logger.Logger) (*CoordinatorClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid coordinator address: %w", err)
	}

	return &CoordinatorClient{
		client:  utils.NewHTTPClient(baseURL, timeout),
		baseURL: baseURL,
		hashKey: hashKey,
		logger:  logger,
	}, nil
}

// StatusStreamURL returns the websocket URL of the status stream.
func (c *CoordinatorClient) StatusStreamURL() string {
	u := c.baseURL
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u + StatusStreamPath
}

// StatusStreamHeader returns the signed headers required to open the stream.
func (c *CoordinatorClient) StatusStreamHeader() http.Header {
	h := http.Header{}
	h.Set(utils.HashSHA256Header, utils.SignMessage(http.MethodGet, StatusStreamPath, nil, c.hashKey))
	return h
}

// SyncBookmarks asks the daemon to queue msg.Sync. With msg.RunSync the call
// returns once the sync completed.
func (c *CoordinatorClient) SyncBookmarks(ctx context.Context, msg models.SyncBookmarksMessage) (models.SyncBookmarksResponse, error) {
	var out models.SyncBookmarksResponse
	err := c.send(ctx, models.CommandSyncBookmarks, msg, &out)
	return out, err
}

// RestoreBookmarks replaces the synced bookmarks with msg.Bookmarks.
func (c *CoordinatorClient) RestoreBookmarks(ctx context.Context, msg models.RestoreBookmarksMessage) (models.SyncBookmarksResponse, error) {
	var out models.SyncBookmarksResponse
	err := c.send(ctx, models.CommandRestoreBookmarks, msg, &out)
	return out, err
}

// CurrentSync returns the request being processed, or nil.
func (c *CoordinatorClient) CurrentSync(ctx context.Context) (*models.SyncRequest, error) {
	var out models.CurrentSyncResponse
	if err := c.send(ctx, models.CommandGetCurrentSync, nil, &out); err != nil {
		return nil, err
	}
	return out.Sync, nil
}

// QueueLength returns the number of queued requests.
func (c *CoordinatorClient) QueueLength(ctx context.Context) (int, error) {
	var out models.QueueLengthResponse
	if err := c.send(ctx, models.CommandGetSyncQueueLength, nil, &out); err != nil {
		return 0, err
	}
	return out.Length, nil
}

// EnableSync enables sync, attaching to msg.SyncInfo first when it is set.
func (c *CoordinatorClient) EnableSync(ctx context.Context, msg models.EnableSyncMessage) error {
	return c.send(ctx, models.CommandEnableSync, msg, nil)
}

// DisableSync disables sync and clears the queue.
func (c *CoordinatorClient) DisableSync(ctx context.Context) error {
	return c.send(ctx, models.CommandDisableSync, nil, nil)
}

// Disconnect disables sync and forgets the remote sync.
func (c *CoordinatorClient) Disconnect(ctx context.Context) error {
	return c.send(ctx, models.CommandDisconnect, nil, nil)
}

// CheckForUpdates reports whether the remote changed since the last sync.
func (c *CoordinatorClient) CheckForUpdates(ctx context.Context) (bool, error) {
	var out models.UpdatesResponse
	if err := c.send(ctx, models.CommandCheckForUpdates, nil, &out); err != nil {
		return false, err
	}
	return out.UpdatesAvailable, nil
}

// SyncSize returns the size of the encrypted payload in bytes.
func (c *CoordinatorClient) SyncSize(ctx context.Context) (int, error) {
	var out models.SyncSizeResponse
	if err := c.send(ctx, models.CommandGetSyncSize, nil, &out); err != nil {
		return 0, err
	}
	return out.Size, nil
}

// Status returns a snapshot of the daemon state.
func (c *CoordinatorClient) Status(ctx context.Context) (models.StatusResponse, error) {
	var out models.StatusResponse
	err := c.send(ctx, models.CommandGetStatus, nil, &out)
	return out, err
}

// AppInfo returns the daemon build info.
func (c *CoordinatorClient) AppInfo(ctx context.Context) (models.AppBuildInfo, error) {
	var out models.AppBuildInfo
	err := c.send(ctx, models.CommandGetAppInfo, nil, &out)
	return out, err
}

// send posts a signed command message. Errors reported by the daemon are
// re-created from their taxonomy name so callers can use errors.Is.
func (c *CoordinatorClient) send(ctx context.Context, cmd models.MessageCommand, in, out any) error {
	body := []byte("{}")
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return fmt.Errorf("marshal %s message: %w", cmd, err)
		}
	}

	path := messagesPath + string(cmd)
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(utils.HashSHA256Header, utils.SignMessage(http.MethodPost, path, body, c.hashKey)).
		SetBody(body)
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Post(path)
	if err != nil {
		c.logger.Debug().Err(err).
			Str("func", "CoordinatorClient.send").
			Str("command", string(cmd)).
			Msg("coordinator request failed")
		return fmt.Errorf("%w: %w", ErrCoordinatorUnreachable, err)
	}

	if resp.IsSuccess() {
		return nil
	}

	var errResp models.ErrorResponse
	if jsonErr := json.Unmarshal(resp.Body(), &errResp); jsonErr != nil || errResp.Error == "" {
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	return app.FromMessage(errResp.Error, errResp.Message)
}

// IsCoordinatorUnreachable reports whether err means the daemon is not running.
func IsCoordinatorUnreachable(err error) bool {
	return errors.Is(err, ErrCoordinatorUnreachable)
}
