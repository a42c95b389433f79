// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// errorStatusList is checked in order; wrapped errors can match more than
// one entry, so the more specific outcomes come first.
var errorStatusList = []struct {
	target error
	status int
}{
	{ErrUnknownCommand, http.StatusNotFound},
	{ErrMalformedMessage, http.StatusBadRequest},
	{ErrInvalidMessage, http.StatusBadRequest},
	{ErrInvalidSignature, http.StatusForbidden},
	{service.ErrInvalidSyncType, http.StatusBadRequest},

	{app.ErrSyncUncommitted, http.StatusServiceUnavailable},
	{app.ErrSyncDisabled, http.StatusConflict},
	{app.ErrSyncCancelled, http.StatusConflict},
	{app.ErrIncompleteSyncInfo, http.StatusUnprocessableEntity},
	{app.ErrSyncNotFound, http.StatusNotFound},
	{app.ErrSyncVersionNotSupported, http.StatusConflict},
	{app.ErrTooManyRequests, http.StatusTooManyRequests},
	{app.ErrNetworkConnection, http.StatusServiceUnavailable},
	{app.ErrDataOutOfSync, http.StatusConflict},
	{app.ErrContainerChanged, http.StatusConflict},
	{app.ErrBookmarkMappingNotFound, http.StatusConflict},
	{app.ErrBookmarkNotFound, http.StatusConflict},
	{app.ErrNativeBookmarkNotFound, http.StatusConflict},
	{app.ErrFailedCreateNativeBookmarks, http.StatusInternalServerError},
	{app.ErrFailedGetNativeBookmarks, http.StatusInternalServerError},
	{app.ErrFailedRemoveNativeBookmarks, http.StatusInternalServerError},
	{app.ErrSyncFailed, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatusList {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError reports err with its taxonomy name so the foreground side can
// re-create the same sentinel.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{
		Error:   app.NameOf(err),
		Message: err.Error(),
	}, statusFromError(err))
}
