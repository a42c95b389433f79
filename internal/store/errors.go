// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the key-value stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when no value is stored under the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrEncodingValue is returned when a value cannot be serialized.
	ErrEncodingValue = errors.New("error encoding value")

	// ErrDecodingValue is returned when a stored value cannot be decoded
	// into the destination.
	ErrDecodingValue = errors.New("error decoding value")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
