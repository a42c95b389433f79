// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// HTTP status sentinels. mapHTTPError combines each with the matching member
// of the sync taxonomy.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	ErrEmptyAddress           = errors.New("empty address")
	ErrInvalidAddress         = errors.New("address must include host and scheme")
	ErrCoordinatorUnreachable = errors.New("sync daemon is not reachable")
)
