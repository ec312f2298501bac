// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/gameshelf/auth"
)

var testToken = auth.Token{AccessToken: "secret-token"}

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *HTTPClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithRetries(0), WithTimeout(5 * time.Second)}, opts...)
	client, err := NewHTTPClient(srv.URL, opts...)
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

func TestNewHTTPClient_InvalidURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
	}{
		{"empty", ""},
		{"no scheme", "catalog.example.com"},
		{"ftp scheme", "ftp://catalog.example.com"},
		{"no host", "https://"},
		{"fragment", "https://catalog.example.com#top"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewHTTPClient(tt.baseURL)
			require.Error(t, err)
		})
	}
}

func TestHTTPClient_Games(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/games", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))

		writeJSON(w, http.StatusOK, `[
			{"app_name": "alpha", "app_title": "Alpha", "app_version": "1.0", "namespace": "ns"},
			{"app_name": "beta", "app_title": "Beta", "app_version": "2.1"}
		]`)
	}))

	games, err := client.Games(context.Background(), testToken)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, Game{AppName: "alpha", AppTitle: "Alpha", AppVersion: "1.0", Namespace: "ns"}, games[0])
	assert.Equal(t, "beta", games[1].AppName)
}

func TestHTTPClient_Games_Empty(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	}))

	games, err := client.Games(context.Background(), testToken)
	require.NoError(t, err)
	assert.NotNil(t, games)
	assert.Empty(t, games)
}

func TestHTTPClient_Games_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		code         int
		body         string
		wantCode     int
		wantAuthErr  bool
		wantContains string
	}{
		{name: "server error", code: http.StatusInternalServerError, body: `{}`, wantCode: http.StatusInternalServerError},
		{name: "unauthorized", code: http.StatusUnauthorized, body: `{}`, wantCode: http.StatusUnauthorized, wantAuthErr: true},
		{name: "forbidden", code: http.StatusForbidden, body: `{}`, wantCode: http.StatusForbidden, wantAuthErr: true},
		{name: "malformed body", code: http.StatusOK, body: `{"not": "a list"}`, wantContains: "decoding game list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.code, tt.body)
			}))

			_, err := client.Games(context.Background(), testToken)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCatalog)
			assert.Equal(t, tt.wantCode, Code(err))
			assert.Equal(t, tt.wantAuthErr, errors.Is(err, auth.ErrAuthRequired))
			if tt.wantContains != "" {
				assert.Contains(t, err.Error(), tt.wantContains)
			}
		})
	}
}

func TestHTTPClient_InstallManifest(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/games/alpha/manifest", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"id": "m-123", "app_title": "Alpha", "app_version": "1.4.2", "executable": "bin/alpha"}`)
	}))

	m, err := client.InstallManifest(context.Background(), testToken, "alpha")
	require.NoError(t, err)
	assert.Equal(t, &Manifest{ID: "m-123", AppTitle: "Alpha", AppVersion: "1.4.2", Executable: "bin/alpha"}, m)
}

func TestHTTPClient_InstallManifest_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     int
		body     string
		wantErr  error
		wantCode int
	}{
		{name: "unknown game", code: http.StatusNotFound, body: `{}`, wantErr: ErrGameNotFound, wantCode: http.StatusNotFound},
		{name: "server error", code: http.StatusBadGateway, body: `{}`, wantErr: ErrCatalog, wantCode: http.StatusBadGateway},
		{name: "bad request", code: http.StatusBadRequest, body: `{}`, wantErr: ErrCatalog, wantCode: http.StatusBadRequest},
		{name: "missing id", code: http.StatusOK, body: `{"app_title": "Alpha"}`, wantErr: ErrCatalog},
		{name: "malformed body", code: http.StatusOK, body: `not json`, wantErr: ErrCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.code, tt.body)
			}))

			m, err := client.InstallManifest(context.Background(), testToken, "alpha")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, m)
			assert.Equal(t, tt.wantCode, Code(err))
		})
	}
}

func TestHTTPClient_InstallManifest_NotFoundIsNotCatalogError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, `{}`)
	}))

	_, err := client.InstallManifest(context.Background(), testToken, "ghost")
	require.ErrorIs(t, err, ErrGameNotFound)
	assert.NotErrorIs(t, err, ErrCatalog)
	assert.Contains(t, err.Error(), "ghost")
}

func TestHTTPClient_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(w, http.StatusServiceUnavailable, `{}`)
			return
		}
		writeJSON(w, http.StatusOK, `[{"app_name": "alpha", "app_title": "Alpha", "app_version": "1"}]`)
	}), WithRetries(2), WithRetryWait(time.Millisecond, 5*time.Millisecond))

	games, err := client.Games(context.Background(), testToken)
	require.NoError(t, err)
	assert.Len(t, games, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPClient_DoesNotRetryNotFound(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusNotFound, `{}`)
	}), WithRetries(3), WithRetryWait(time.Millisecond, 5*time.Millisecond))

	_, err := client.InstallManifest(context.Background(), testToken, "ghost")
	require.ErrorIs(t, err, ErrGameNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPClient_ContextCanceled(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Games(ctx, testToken)
	require.ErrorIs(t, err, ErrCatalog)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPClient_CustomUserAgent(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gameshelf-test/0.1", r.Header.Get("User-Agent"))
		writeJSON(w, http.StatusOK, `[]`)
	}), WithUserAgent("gameshelf-test/0.1"))

	_, err := client.Games(context.Background(), testToken)
	require.NoError(t, err)
}

func TestNewHTTPClient_InvalidUserAgent(t *testing.T) {
	t.Parallel()

	_, err := NewHTTPClient("https://catalog.example.com", WithUserAgent("gameshelf\r\nX-Injected: 1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user agent")
}

func TestHTTPClient_InvalidTokenNotSent(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, `[]`)
	}))

	tok := auth.Token{AccessToken: "abc\r\nX-Injected: 1"}

	_, err := client.Games(context.Background(), tok)
	require.ErrorIs(t, err, auth.ErrAuthRequired)
	assert.NotErrorIs(t, err, ErrCatalog)

	_, err = client.InstallManifest(context.Background(), tok, "alpha")
	require.ErrorIs(t, err, auth.ErrAuthRequired)

	assert.Zero(t, calls.Load())
}

func TestStatusError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", &StatusError{err: ErrCatalog, code: http.StatusTeapot})

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusTeapot, se.HTTPCode())
	assert.ErrorIs(t, err, ErrCatalog)
	assert.Contains(t, err.Error(), "HTTP 418")
	assert.Equal(t, 0, Code(errors.New("plain")))
}
