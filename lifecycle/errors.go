// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"errors"

	"github.com/stacklok/gameshelf/auth"
	"github.com/stacklok/gameshelf/catalog"
	"github.com/stacklok/gameshelf/gamestore"
	"github.com/stacklok/gameshelf/validation/appname"
)

// Errors returned by Manager operations. Callers distinguish them with errors.Is.
var (
	// ErrNotFound is returned when the app name has no registry record.
	ErrNotFound = gamestore.ErrNotFound

	// ErrCorruptRecord is returned when the registry record cannot be decoded.
	ErrCorruptRecord = gamestore.ErrCorruptRecord

	// ErrIO is returned for filesystem failures in the registry or install directories.
	ErrIO = gamestore.ErrIO

	// ErrAuthRequired is returned when no valid credential is available.
	ErrAuthRequired = auth.ErrAuthRequired

	// ErrGameNotFound is returned when the catalog does not know the game.
	ErrGameNotFound = catalog.ErrGameNotFound

	// ErrCatalog is returned for other catalog failures.
	ErrCatalog = catalog.ErrCatalog

	// ErrInvalidAppName is returned for app names that cannot be used on disk.
	ErrInvalidAppName = appname.ErrInvalid

	// ErrExecutableMissing is returned by Launch when the recorded executable does not exist.
	ErrExecutableMissing = errors.New("game executable missing")

	// ErrLaunchFailed is returned by Launch when the game process cannot be created.
	ErrLaunchFailed = errors.New("game launch failed")
)
