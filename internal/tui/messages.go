// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-bookmark-sync/models"

type statusChangedMsg struct {
	msg models.StatusMessage
}

type statusLoadedMsg struct {
	status models.StatusResponse
	err    error
}

type streamClosedMsg struct {
	err error
}

type syncDoneMsg struct {
	action string
	resp   models.SyncBookmarksResponse
	err    error
}

type appInfoMsg struct {
	info models.AppBuildInfo
	err  error
}
