// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package appname provides validation functions for game application names.
package appname

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MaxLength is the longest app name accepted, in bytes.
const MaxLength = 128

// ErrInvalid is returned for every app name that fails validation.
var ErrInvalid = errors.New("invalid app name")

var validNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._\-]*$`)

// Validate checks that name can be used both as a record file name and as a
// directory name under the install root. It rejects empty names, null bytes,
// path separators, relative path elements and anything outside [A-Za-z0-9._-].
func Validate(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: cannot be empty or consist only of whitespace", ErrInvalid)
	}

	if len(name) > MaxLength {
		return fmt.Errorf("%w: exceeds maximum length of %d bytes", ErrInvalid, MaxLength)
	}

	if strings.Contains(name, "\x00") {
		return fmt.Errorf("%w: cannot contain null bytes", ErrInvalid)
	}

	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: cannot contain path separators: %q", ErrInvalid, name)
	}

	if name == "." || name == ".." {
		return fmt.Errorf("%w: cannot be a relative path element: %q", ErrInvalid, name)
	}

	if !validNameRegex.MatchString(name) {
		return fmt.Errorf("%w: can only contain alphanumeric characters, dots, underscores and dashes, "+
			"and must start with an alphanumeric character: %q", ErrInvalid, name)
	}

	return nil
}
