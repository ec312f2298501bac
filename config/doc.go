// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads gameshelf configuration.

Values come from, in increasing order of precedence: built-in defaults, the
YAML config file and GAMESHELF_* environment variables.

	# $XDG_CONFIG_HOME/gameshelf/config.yaml
	install_dir: /home/me/Games
	data_dir: /home/me/.local/share/gameshelf
	catalog:
	  url: https://catalog.example.com/api
	  timeout: 30s
	  retries: 3
	log:
	  debug: false
	  file: /home/me/.local/state/gameshelf/gameshelf.log

Nested keys map to environment variables with dots replaced by underscores,
for example GAMESHELF_CATALOG_URL or GAMESHELF_LOG_DEBUG.
*/
package config
