// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"errors"
	"time"
)

// expirySkew treats a token as expired slightly before its real expiry, so a
// remote call started with it does not race the deadline.
const expirySkew = 30 * time.Second

// Sentinel errors for credential operations.
var (
	// ErrAuthRequired is returned when no valid credential is available.
	ErrAuthRequired = errors.New("authentication required")

	// ErrInvalidToken is returned by SetToken for tokens without an access token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrIO is returned for filesystem failures while persisting credentials.
	ErrIO = errors.New("credential I/O error")
)

// Token is an access credential for the remote catalog.
type Token struct {
	// AccessToken is sent as a bearer token with catalog requests.
	AccessToken string `json:"access_token"`

	// RefreshToken is kept for catalog clients that can renew sessions.
	RefreshToken string `json:"refresh_token,omitempty"`

	// AccountID identifies the account the token was issued to.
	AccountID string `json:"account_id,omitempty"`

	// ExpiresAt is the expiry time. The zero value never expires.
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// Valid reports whether the token has an access token and has not expired at now.
func (t Token) Valid(now time.Time) bool {
	if t.AccessToken == "" {
		return false
	}
	if t.ExpiresAt.IsZero() {
		return true
	}
	return now.Add(expirySkew).Before(t.ExpiresAt)
}
