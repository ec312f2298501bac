// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package http provides validation functions for HTTP header values and service URLs.
package http

import (
	"fmt"
	"net/url"

	"golang.org/x/net/http/httpguts"
)

// MaxHeaderValueLength is the longest header value accepted.
const MaxHeaderValueLength = 8192

// ValidateHeaderValue validates that a string is a valid HTTP header value per RFC 7230.
// It rejects CRLF sequences and other control characters.
func ValidateHeaderValue(value string) error {
	if value == "" {
		return fmt.Errorf("header value cannot be empty")
	}

	if len(value) > MaxHeaderValueLength {
		return fmt.Errorf("header value exceeds maximum length of %d bytes", MaxHeaderValueLength)
	}

	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("invalid HTTP header value: contains control characters")
	}

	return nil
}

// ValidateBaseURL validates that rawURL can serve as the base of an HTTP API:
// it must parse, use http or https, and name a host.
func ValidateBaseURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("URL cannot be empty")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL must use http or https: %s", rawURL)
	}

	if parsed.Host == "" {
		return fmt.Errorf("URL must include a host: %s", rawURL)
	}

	if parsed.Fragment != "" {
		return fmt.Errorf("URL must not contain a fragment: %s", rawURL)
	}

	return nil
}
