// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

type httpRemoteService struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter

	logger *logger.Logger
}

// NewHTTPRemoteService constructs an HTTP/REST implementation of
// [RemoteService] against adapterCfg.HTTPAddress. Requests are throttled to
// adapterCfg.RateLimit per second; zero means unlimited.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPRemoteService(adapterCfg config.Adapter, logger *logger.Logger) (RemoteService, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	limit := rate.Inf
	if adapterCfg.RateLimit > 0 {
		limit = rate.Limit(adapterCfg.RateLimit)
	}

	return &httpRemoteService{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateSync implements [RemoteService]. POST /bookmarks.
func (h *httpRemoteService) CreateSync(ctx context.Context, version string) (models.CreateSyncResponse, error) {
	var created models.CreateSyncResponse

	req, err := h.request(ctx)
	if err != nil {
		return created, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateSyncRequest{Version: version}).
		SetResult(&created).
		Post("/bookmarks")
	if err != nil {
		return created, mapTransportError(ctx, "create sync request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return created, err
	}

	return created, nil
}

// GetLastUpdated implements [RemoteService]. GET /bookmarks/{id}/lastUpdated.
func (h *httpRemoteService) GetLastUpdated(ctx context.Context, syncID string) (string, error) {
	var out models.LastUpdatedResponse
	if err := h.get(ctx, "get last updated request", "/bookmarks/{id}/lastUpdated", syncID, &out); err != nil {
		return "", err
	}
	return out.LastUpdated, nil
}

// GetVersion implements [RemoteService]. GET /bookmarks/{id}/version.
func (h *httpRemoteService) GetVersion(ctx context.Context, syncID string) (string, error) {
	var out models.VersionResponse
	if err := h.get(ctx, "get version request", "/bookmarks/{id}/version", syncID, &out); err != nil {
		return "", err
	}
	return out.Version, nil
}

// GetBookmarks implements [RemoteService]. GET /bookmarks/{id}.
func (h *httpRemoteService) GetBookmarks(ctx context.Context, syncID string) (models.GetBookmarksResponse, error) {
	var out models.GetBookmarksResponse
	err := h.get(ctx, "get bookmarks request", "/bookmarks/{id}", syncID, &out)
	return out, err
}

// UpdateBookmarks implements [RemoteService]. PUT /bookmarks/{id}. A 409
// means the sync changed since req.LastUpdated.
func (h *httpRemoteService) UpdateBookmarks(ctx context.Context, req models.UpdateBookmarksRequest) (models.UpdateBookmarksResponse, error) {
	var out models.UpdateBookmarksResponse

	r, err := h.request(ctx)
	if err != nil {
		return out, err
	}

	resp, err := r.
		SetPathParam("id", req.ID).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Put("/bookmarks/{id}")
	if err != nil {
		return out, mapTransportError(ctx, "update bookmarks request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("func", "httpRemoteService.UpdateBookmarks").
			Str("sync_id", req.ID).
			Int("status", resp.StatusCode()).
			Msg("remote rejected bookmarks update")
		return out, err
	}

	return out, nil
}

func (h *httpRemoteService) get(ctx context.Context, op, path, syncID string, out any) error {
	req, err := h.request(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", syncID).
		SetResult(out).
		Get(path)
	if err != nil {
		return mapTransportError(ctx, op, err)
	}

	return mapHTTPError(resp)
}

// request waits for the rate limiter and returns a request bound to ctx.
func (h *httpRemoteService) request(ctx context.Context) (*resty.Request, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	return h.client.R().SetContext(ctx), nil
}
