// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package gamestore

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrNotFound is returned when no record exists for the requested app name.
	ErrNotFound = errors.New("game record not found")

	// ErrCorruptRecord is returned when a record file exists but cannot be decoded
	// into a valid record.
	ErrCorruptRecord = errors.New("corrupt game record")

	// ErrInvalidRecord is returned by Save when the record is missing required fields.
	ErrInvalidRecord = errors.New("invalid game record")

	// ErrIO is returned for filesystem failures such as permission or disk errors.
	ErrIO = errors.New("registry I/O error")
)
