// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return app.Wrap(app.ErrSyncFailed, fmt.Errorf("%w: %s", ErrBadRequest, body))
	case http.StatusNotFound:
		return app.Wrap(app.ErrSyncNotFound, fmt.Errorf("%w: %s", ErrNotFound, body))
	case http.StatusConflict:
		return app.Wrap(app.ErrDataOutOfSync, fmt.Errorf("%w: %s", ErrConflict, body))
	case http.StatusTooManyRequests:
		return app.Wrap(app.ErrTooManyRequests, fmt.Errorf("%w: %s", ErrTooManyRequests, body))
	case http.StatusInternalServerError:
		return app.Wrap(app.ErrSyncFailed, fmt.Errorf("%w: %s", ErrInternalServerError, body))
	case http.StatusBadGateway:
		return app.Wrap(app.ErrNetworkConnection, fmt.Errorf("%w: %s", ErrBadGateway, body))
	case http.StatusServiceUnavailable:
		return app.Wrap(app.ErrNetworkConnection, fmt.Errorf("%w: %s", ErrServiceUnavailable, body))
	case http.StatusGatewayTimeout:
		return app.Wrap(app.ErrNetworkConnection, fmt.Errorf("%w: %s", ErrGatewayTimeout, body))
	default:
		return app.Wrap(app.ErrSyncFailed, fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body))
	}
}

// mapTransportError classifies a failure that produced no HTTP response.
// A caller-side cancellation is returned as is; anything else means the
// service could not be reached.
func mapTransportError(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return app.Wrap(app.ErrNetworkConnection, fmt.Errorf("%s: %w", op, err))
}
