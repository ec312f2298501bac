// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package gamestore provides durable, file-backed storage for installed game
records.

Each record lives in its own JSON file named after the game's app name inside
a registry directory:

	<data_home>/gameshelf/installed/<app_name>.json

One file per record keeps corruption local to a single game and lets separate
processes update different games without a lock. Concurrent writes to the same
app name are last-writer-wins.

# Basic Usage

	store := gamestore.NewStore(gamestore.DefaultRegistryRoot())

	err := store.Save(gamestore.Record{
		AppName:     "Fortnite",
		AppTitle:    "Fortnite",
		AppVersion:  "++Fortnite+Release-30.10",
		InstallPath: "/home/me/Games/Fortnite",
		Executable:  "FortniteGame/Binaries/Linux/FortniteClient",
	})

	rec, err := store.Load("Fortnite")
	if errors.Is(err, gamestore.ErrNotFound) {
		// not installed
	}

# Corruption Handling

Load reports a record file that fails JSON decoding or schema validation as
ErrCorruptRecord. List skips such files and returns every other record.
*/
package gamestore
