// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package lifecycle sequences the install, launch and uninstall of games.

A Manager ties together four collaborators, each behind an interface so tests
can substitute the generated mocks in the mocks sub-package:

  - Store: the installed-game registry (gamestore.Store)
  - Credentials: the catalog token (auth.FileStore)
  - Catalog: the remote catalog (catalog.HTTPClient)
  - Launcher: process creation (ProcessLauncher)

# Basic Usage

	m := lifecycle.New(
		gamestore.NewStore(gamestore.DefaultRegistryRoot()),
		auth.NewFileStore(auth.DefaultTokenPath()),
		client,
		cfg.InstallDir,
	)

	rec, err := m.Install(ctx, "Fortnite")
	pid, err := m.Launch("Fortnite")
	err = m.Uninstall("Fortnite")

# State

Each game is either unregistered or installed. Install moves a game to
installed, and installing again replaces the record. Uninstall moves it back.
There is no persisted intermediate state: a crash between creating the install
directory and writing the record leaves an empty directory and no record.

# Failure Behavior

No operation retries. Install writes a record only after the install directory
exists. Uninstall deletes the record only after the install directory has been
removed or was already gone, so a failed removal can be retried. Launch
succeeds once the process has been created; the game's own outcome is not
observed.
*/
package lifecycle
