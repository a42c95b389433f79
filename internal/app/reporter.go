// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
)

// ErrorReporter receives every terminal sync failure.
type ErrorReporter interface {
	Report(ctx context.Context, err error)
}

type logReporter struct {
	logger *logger.Logger
}

// NewLogReporter returns a reporter that writes failures to the log.
func NewLogReporter(logger *logger.Logger) ErrorReporter {
	return &logReporter{logger: logger}
}

func (r *logReporter) Report(_ context.Context, err error) {
	if err == nil {
		return
	}

	name := NameOf(err)
	if name == "" {
		name = "UnclassifiedError"
	}

	r.logger.Error().Err(err).
		Str("func", "logReporter.Report").
		Str("error_name", name).
		Msg("sync error reported")
}
