// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	messagesRoute     = "/api/messages/{command}"
	statusStreamRoute = "/api/status/stream"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// every route requires a signed request
	router.Group(func(r chi.Router) {
		r.Use(h.verifySignature)
		r.Post(messagesRoute, h.dispatchMessage)
		r.Get(statusStreamRoute, h.streamStatus)
	})

	router.MethodNotAllowed(notFoundOnWrongMethod(router))

	return router
}
