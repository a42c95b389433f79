// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
)

// verifySignature rejects requests whose HashSHA256 header is not the HMAC
// of method, path and body under the daemon hash key.
func (h *Handler) verifySignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.verifySignature").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.HashSHA256Header)
		if signature == "" || !utils.VerifyMessage(r.Method, r.URL.Path, body, h.hashKey, signature) {
			log.Error().Str("func", "*Handler.verifySignature").
				Str("path", r.URL.Path).
				Bool("signed", signature != "").
				Msg("message signature mismatch")
			writeError(w, ErrInvalidSignature)
			return
		}

		next.ServeHTTP(w, r)
	})
}
