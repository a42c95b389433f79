// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/go-chi/chi/v5"
)

type messageHandler func(w http.ResponseWriter, r *http.Request) error

func (h *Handler) messageHandlers() map[models.MessageCommand]messageHandler {
	return map[models.MessageCommand]messageHandler{
		models.CommandSyncBookmarks:      h.syncBookmarks,
		models.CommandRestoreBookmarks:   h.restoreBookmarks,
		models.CommandGetCurrentSync:     h.getCurrentSync,
		models.CommandGetSyncQueueLength: h.getSyncQueueLength,
		models.CommandEnableSync:         h.enableSync,
		models.CommandDisableSync:        h.disableSync,
		models.CommandDisconnect:         h.disconnect,
		models.CommandCheckForUpdates:    h.checkForUpdates,
		models.CommandGetSyncSize:        h.getSyncSize,
		models.CommandGetStatus:          h.getStatus,
		models.CommandGetAppInfo:         h.getAppInfo,
	}
}

func (h *Handler) dispatchMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	command := models.MessageCommand(chi.URLParam(r, "command"))

	handle, ok := h.messageHandlers()[command]
	if !ok {
		log.Error().Str("func", "*Handler.dispatchMessage").Str("command", string(command)).Msg("unknown command")
		writeError(w, fmt.Errorf("%w: %q", ErrUnknownCommand, command))
		return
	}

	if err := handle(w, r); err != nil {
		log.Err(err).Str("func", "*Handler.dispatchMessage").Str("command", string(command)).Msg("command failed")
		writeError(w, err)
	}
}

func decodeMessage(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && err != io.EOF {
		return fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	return nil
}

// decodeValidMessage decodes the body into dst and validates it.
func (h *Handler) decodeValidMessage(r *http.Request, dst any) error {
	if err := decodeMessage(r, dst); err != nil {
		return err
	}
	if err := h.validator.Validate(r.Context(), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}
	return nil
}

// syncBookmarks queues msg.Sync. Without RunSync the request is processed
// in the background and 202 is returned with its id. A message without a
// sync runs an update check.
func (h *Handler) syncBookmarks(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var msg models.SyncBookmarksMessage
	if err := h.decodeValidMessage(r, &msg); err != nil {
		return err
	}

	if msg.Sync == nil {
		if err := h.engine.ExecuteSync(ctx); err != nil {
			return err
		}
		utils.WriteJSON(w, models.SyncBookmarksResponse{}, http.StatusOK)
		return nil
	}

	req := *msg.Sync
	if !msg.RunSync {
		id, err := h.engine.EnqueueSync(ctx, req)
		if err != nil {
			return err
		}
		utils.WriteJSON(w, models.SyncBookmarksResponse{ID: id, Queued: true}, http.StatusAccepted)
		return nil
	}

	if req.ID == "" {
		req.ID = h.ids.Generate()
	}
	if err := h.engine.SubmitSync(ctx, req, true); err != nil {
		return err
	}
	utils.WriteJSON(w, models.SyncBookmarksResponse{ID: req.ID}, http.StatusOK)
	return nil
}

// restoreBookmarks pushes a backup snapshot as a local sync and waits for it.
func (h *Handler) restoreBookmarks(w http.ResponseWriter, r *http.Request) error {
	var msg models.RestoreBookmarksMessage
	if err := h.decodeValidMessage(r, &msg); err != nil {
		return err
	}

	req := models.SyncRequest{
		ID:         h.ids.Generate(),
		Type:       models.SyncTypeLocal,
		Bookmarks:  msg.Bookmarks,
		ChangeInfo: &models.ChangeInfo{Type: "restore"},
	}
	if err := h.engine.SubmitSync(r.Context(), req, true); err != nil {
		return err
	}
	utils.WriteJSON(w, models.SyncBookmarksResponse{ID: req.ID}, http.StatusOK)
	return nil
}

func (h *Handler) getCurrentSync(w http.ResponseWriter, _ *http.Request) error {
	utils.WriteJSON(w, models.CurrentSyncResponse{Sync: h.engine.CurrentSync()}, http.StatusOK)
	return nil
}

func (h *Handler) getSyncQueueLength(w http.ResponseWriter, _ *http.Request) error {
	utils.WriteJSON(w, models.QueueLengthResponse{Length: h.engine.QueueLength()}, http.StatusOK)
	return nil
}

// enableSync attaches to msg.SyncInfo when given, otherwise re-enables the
// stored sync.
func (h *Handler) enableSync(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var msg models.EnableSyncMessage
	if err := h.decodeValidMessage(r, &msg); err != nil {
		return err
	}

	var err error
	if msg.SyncInfo != nil {
		err = h.engine.Connect(ctx, *msg.SyncInfo)
	} else {
		err = h.engine.EnableSync(ctx)
	}
	if err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) disableSync(w http.ResponseWriter, r *http.Request) error {
	if err := h.engine.DisableSync(r.Context()); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) disconnect(w http.ResponseWriter, r *http.Request) error {
	if err := h.engine.Disconnect(r.Context()); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) checkForUpdates(w http.ResponseWriter, r *http.Request) error {
	updates, err := h.engine.CheckForUpdates(r.Context())
	if err != nil {
		return err
	}
	utils.WriteJSON(w, models.UpdatesResponse{UpdatesAvailable: updates}, http.StatusOK)
	return nil
}

func (h *Handler) getSyncSize(w http.ResponseWriter, r *http.Request) error {
	size, err := h.engine.SyncSize(r.Context())
	if err != nil {
		return err
	}
	utils.WriteJSON(w, models.SyncSizeResponse{Size: size}, http.StatusOK)
	return nil
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) error {
	enabled, err := h.engine.IsSyncEnabled(r.Context())
	if err != nil {
		return err
	}
	utils.WriteJSON(w, models.StatusResponse{
		Status:      h.status.Current().Status,
		Enabled:     enabled,
		QueueLength: h.engine.QueueLength(),
		Current:     h.engine.CurrentSync(),
	}, http.StatusOK)
	return nil
}

func (h *Handler) getAppInfo(w http.ResponseWriter, _ *http.Request) error {
	utils.WriteJSON(w, h.appInfo, http.StatusOK)
	return nil
}
