// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for catalog operations.
var (
	// ErrGameNotFound is returned when the catalog has no game with the requested app name.
	ErrGameNotFound = errors.New("game not found in catalog")

	// ErrCatalog is returned for every other catalog failure: transport errors,
	// unexpected status codes and undecodable responses.
	ErrCatalog = errors.New("catalog request failed")
)

// StatusError carries the HTTP status code of a failed catalog response through
// the call stack. It wraps one of the package sentinels.
type StatusError struct {
	err  error
	code int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP %d %s", e.err, e.code, http.StatusText(e.code))
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *StatusError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code of the failed response.
func (e *StatusError) HTTPCode() int {
	return e.code
}

// Code extracts the HTTP status code from an error chain.
// It returns 0 if err carries no StatusError.
func Code(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.code
	}
	return 0
}
