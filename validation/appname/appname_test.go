// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package appname

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		// Valid cases
		{"simple", "Fortnite", false},
		{"lowercase", "sugar", false},
		{"digits", "9d2d0eb64d5c44529cece33fe2a46482", false},
		{"dots underscores dashes", "fn_2024.1-beta", false},
		{"max length", strings.Repeat("a", MaxLength), false},

		// Empty and whitespace
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"leading space", " alpha", true},
		{"inner space", "my game", true},

		// Path escapes
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"traversal", "../etc", true},
		{"forward slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"leading dot", ".hidden", true},

		// Other invalid characters
		{"null byte", "alpha\x00", true},
		{"special characters", "alpha@beta", true},
		{"too long", strings.Repeat("a", MaxLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.input)
			if tt.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
