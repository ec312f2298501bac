// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package lifecycle

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/stacklok/gameshelf/auth"
	"github.com/stacklok/gameshelf/catalog"
	"github.com/stacklok/gameshelf/gamestore"
)

// Credentials provides the token needed for catalog calls.
type Credentials interface {
	// GetToken returns a valid token or an error wrapping auth.ErrAuthRequired.
	GetToken() (auth.Token, error)

	// SetToken persists a new token.
	SetToken(tok auth.Token) error

	// IsAuthenticated reports whether GetToken would succeed.
	IsAuthenticated() bool
}

// Catalog provides remote game library operations.
type Catalog interface {
	// Games lists the games available to the token's account.
	Games(ctx context.Context, tok auth.Token) ([]catalog.Game, error)

	// InstallManifest resolves the install manifest for a game.
	InstallManifest(ctx context.Context, tok auth.Token, appName string) (*catalog.Manifest, error)
}

// Store persists installed game records.
type Store interface {
	Save(rec gamestore.Record) error
	Load(appName string) (gamestore.Record, error)
	List() ([]gamestore.Record, error)
	Delete(appName string) error
}

// Launcher starts game processes.
type Launcher interface {
	// Start spawns the executable at path with dir as its working directory
	// and returns without waiting for it to exit.
	Start(path, dir string) (pid int, err error)
}
