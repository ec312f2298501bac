// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package appname provides validation for game application names.

An app name is the stable identifier a catalog assigns to a game. Locally it
doubles as the registry file name (<app_name>.json) and as the install
directory name (<install_root>/<app_name>), so it must never escape either
directory.

# Name Validation

	if err := appname.Validate("Fortnite"); err != nil {
		// errors.Is(err, appname.ErrInvalid) == true
	}

Valid app names must:
  - Be non-empty and at most MaxLength bytes
  - Start with an ASCII letter or digit
  - Contain only ASCII letters, digits, dots, underscores and dashes

# Examples

Valid names:

	"Fortnite"
	"Sugar"
	"fn_2024.1-beta"

Invalid names:

	""          // empty
	"../etc"    // path traversal
	"a/b"       // path separator
	".hidden"   // leading dot
	"my game"   // space
*/
package appname
