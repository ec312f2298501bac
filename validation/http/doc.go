// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package http validates values that end up on the wire of outgoing HTTP requests.

Tokens and user agents are sent as header values, so they are checked before
they are stored or configured:

	if err := http.ValidateHeaderValue(token); err != nil {
		// reject the token
	}

The header check rejects:
  - CRLF injection attempts (\r\n sequences)
  - Control characters
  - Values longer than 8192 bytes

Service base URLs must use http or https, include a host and carry no fragment:

	if err := http.ValidateBaseURL("https://catalog.example.com/api"); err != nil {
		// reject the configuration
	}
*/
package http
