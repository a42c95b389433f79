// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrUnknownCommand is returned for a message command the daemon does
	// not handle.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMalformedMessage is returned when a message body cannot be decoded.
	ErrMalformedMessage = errors.New("malformed message")

	// ErrInvalidMessage is returned when a decoded message fails validation.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrInvalidSignature is returned when the HashSHA256 header is missing
	// or does not match the request.
	ErrInvalidSignature = errors.New("invalid message signature")
)
