// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds what every layer of the sync engine shares: the sync
// error taxonomy, the process-wide error reporter and the human-readable
// messages written by the coordinator.
package app

const (
	// MsgInvalidDataProvided is returned when a coordinator message body
	// cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUnknownCommand is returned for a message whose command name has no
	// registered handler.
	MsgUnknownCommand = "unknown command"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 signature of a
	// message does not match its content.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgInternalServerError is returned for failures outside the sync
	// error taxonomy.
	MsgInternalServerError = "internal server error"

	// MsgInvalidSyncType is returned when a queued sync carries an unknown type.
	MsgInvalidSyncType = "invalid sync type"
)
