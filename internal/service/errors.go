// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidSyncType = errors.New("invalid sync type")
	ErrNoProviders     = errors.New("no sync providers registered")
)
