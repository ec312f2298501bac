// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	httpval "github.com/stacklok/gameshelf/validation/http"
)

// FileStore keeps a single catalog token in a JSON file readable only by its owner.
type FileStore struct {
	path string
	now  func() time.Time
}

// NewFileStore creates a token store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// TokenPath returns the token file location within the given data home directory.
func TokenPath(dataHome string) string {
	return filepath.Join(dataHome, "gameshelf", "token.json")
}

// DefaultTokenPath returns the token file location using XDG base directory conventions.
func DefaultTokenPath() string {
	return TokenPath(xdg.DataHome)
}

// Path returns the token file path.
func (s *FileStore) Path() string {
	return s.path
}

// GetToken returns the stored token, or ErrAuthRequired if there is no usable one.
func (s *FileStore) GetToken() (Token, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Token{}, fmt.Errorf("%w: no stored token", ErrAuthRequired)
		}
		return Token{}, fmt.Errorf("%w: reading token: %w", ErrAuthRequired, err)
	}

	var tok Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return Token{}, fmt.Errorf("%w: stored token is unreadable: %w", ErrAuthRequired, err)
	}

	if err := httpval.ValidateHeaderValue(tok.AccessToken); err != nil {
		return Token{}, fmt.Errorf("%w: stored token is unusable: %w", ErrAuthRequired, err)
	}

	if !tok.Valid(s.now()) {
		return Token{}, fmt.Errorf("%w: stored token has expired", ErrAuthRequired)
	}

	return tok, nil
}

// SetToken persists tok, replacing any stored token. The access token is sent
// as a bearer header, so it must be a valid HTTP header value.
func (s *FileStore) SetToken(tok Token) error {
	if tok.AccessToken == "" {
		return fmt.Errorf("%w: access token is empty", ErrInvalidToken)
	}
	if err := httpval.ValidateHeaderValue(tok.AccessToken); err != nil {
		return fmt.Errorf("%w: access token: %w", ErrInvalidToken, err)
	}

	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: creating token directory: %w", ErrIO, err)
	}

	tmp, err := os.CreateTemp(dir, ".token.*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: writing token: %w", ErrIO, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: writing token: %w", ErrIO, err)
	}

	return nil
}

// IsAuthenticated reports whether a valid token is stored.
func (s *FileStore) IsAuthenticated() bool {
	_, err := s.GetToken()
	return err == nil
}

// Logout removes the stored token. Logging out without a token is not an error.
func (s *FileStore) Logout() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: removing token: %w", ErrIO, err)
	}
	return nil
}
