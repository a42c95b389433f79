// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/app"
)

// ErrNoController is returned by New without a daemon connection.
var ErrNoController = errors.New("tui: no controller")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if adapter.IsCoordinatorUnreachable(err) {
		return "Daemon is not running or unreachable"
	}
	if kind := app.KindOf(err); kind != nil {
		if app.IsDisableError(err) {
			return kind.Error() + "\nSync is off; run `syncctl enable` to resume."
		}
		return kind.Error()
	}

	return err.Error()
}
