// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package catalog provides a client for the remote game catalog service.

The catalog exposes two read-only endpoints, both authenticated with a bearer
token:

	GET {base}/games                     -> []Game
	GET {base}/games/{app_name}/manifest -> Manifest

# Basic Usage

	client, err := catalog.NewHTTPClient("https://catalog.example.com/api",
		catalog.WithTimeout(20*time.Second),
		catalog.WithRetries(2),
	)

	games, err := client.Games(ctx, token)

# Errors

A 404 from the manifest endpoint is reported as ErrGameNotFound. Every other
failure wraps ErrCatalog. Failures tied to a response also carry a
*StatusError, so the status code can be recovered:

	if catalog.Code(err) == http.StatusServiceUnavailable {
		// catalog is down
	}

401 and 403 responses additionally wrap auth.ErrAuthRequired.

# Retries

Transport errors, 429 and 5xx responses are retried with exponential backoff
by a go-retryablehttp transport. Callers above this package do not retry.
*/
package catalog
