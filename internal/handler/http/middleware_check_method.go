// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/go-chi/chi/v5"
)

// notFoundOnWrongMethod is registered as the router's MethodNotAllowed
// handler. A coordinator route called with a method it does not serve gets
// 404, same as a path the coordinator does not know.
func notFoundOnWrongMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().
			Str("func", "notFoundOnWrongMethod").
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("method not served on coordinator route")
		w.WriteHeader(http.StatusNotFound)
	}
}
