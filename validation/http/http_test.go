// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHeaderValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		// Valid cases
		{"simple token", "abc123", false},
		{"bearer style", "Bearer eyJhbGciOiJIUzI1NiJ9.e30.sig", false},
		{"with spaces", "gameshelf test/0.1", false},
		{"with tab", "value\twith tab", false},

		// CRLF injection attacks
		{"crlf injection", "abc\r\nX-Injected: 1", true},
		{"newline", "abc\ndef", true},
		{"carriage return", "abc\r", true},

		// Other invalid characters
		{"null byte", "abc\x00", true},
		{"delete character", "abc\x7f", true},
		{"empty string", "", true},

		// Length limits
		{"at limit", strings.Repeat("a", MaxHeaderValueLength), false},
		{"too long", strings.Repeat("a", MaxHeaderValueLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateHeaderValue(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"https", "https://catalog.example.com", false},
		{"http with port and path", "http://127.0.0.1:8080/api/", false},
		{"empty", "", true},
		{"no scheme", "catalog.example.com", true},
		{"ftp scheme", "ftp://catalog.example.com", true},
		{"no host", "https://", true},
		{"fragment", "https://catalog.example.com#frag", true},
		{"unparsable", "http://[::1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateBaseURL(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
