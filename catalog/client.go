// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/stacklok/gameshelf/auth"
	httpval "github.com/stacklok/gameshelf/validation/http"
)

// Defaults for NewHTTPClient.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultRetries      = 3
	DefaultRetryWaitMin = 500 * time.Millisecond
	DefaultRetryWaitMax = 10 * time.Second
	DefaultUserAgent    = "gameshelf/1.0"
)

type options struct {
	timeout      time.Duration
	retries      int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	userAgent    string
	httpClient   *http.Client
}

// Option configures an HTTPClient.
type Option func(*options)

// WithTimeout bounds each call, retries included.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithRetries sets how many times a failed idempotent request is retried.
func WithRetries(n int) Option {
	return func(o *options) {
		o.retries = n
	}
}

// WithRetryWait sets the backoff bounds between retries.
func WithRetryWait(minWait, maxWait time.Duration) Option {
	return func(o *options) {
		o.retryWaitMin = minWait
		o.retryWaitMax = maxWait
	}
}

// WithUserAgent overrides the User-Agent header. NewHTTPClient rejects values
// that are not valid header values.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithHTTPClient sets the client used for each individual attempt.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// HTTPClient talks to the catalog service over its JSON HTTP API.
// Transport failures and 5xx responses are retried with backoff; every other
// failure is returned to the caller.
type HTTPClient struct {
	rest    *resty.Client
	baseURL string
}

// NewHTTPClient creates a catalog client for the service at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	if err := httpval.ValidateBaseURL(baseURL); err != nil {
		return nil, fmt.Errorf("invalid catalog URL: %w", err)
	}

	o := &options{
		timeout:      DefaultTimeout,
		retries:      DefaultRetries,
		retryWaitMin: DefaultRetryWaitMin,
		retryWaitMax: DefaultRetryWaitMax,
		userAgent:    DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(o)
	}
	if err := httpval.ValidateHeaderValue(o.userAgent); err != nil {
		return nil, fmt.Errorf("invalid user agent: %w", err)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = o.retries
	retryClient.RetryWaitMin = o.retryWaitMin
	retryClient.RetryWaitMax = o.retryWaitMax
	retryClient.Logger = nil
	// Hand the last response back so its status code can be classified.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if o.httpClient != nil {
		retryClient.HTTPClient = o.httpClient
	}

	rest := resty.NewWithClient(retryClient.StandardClient()).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(o.timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", o.userAgent)

	return &HTTPClient{rest: rest, baseURL: baseURL}, nil
}

// BaseURL returns the catalog service URL.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// Games returns the remote game library of the token's account.
func (c *HTTPClient) Games(ctx context.Context, tok auth.Token) ([]Game, error) {
	if err := checkToken(tok); err != nil {
		return nil, err
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetAuthToken(tok.AccessToken).
		Get("/games")
	if err != nil {
		return nil, fmt.Errorf("%w: listing games: %w", ErrCatalog, err)
	}
	if resp.IsError() {
		return nil, statusError(resp.StatusCode(), ErrCatalog)
	}

	games := []Game{}
	if err := json.Unmarshal(resp.Body(), &games); err != nil {
		return nil, fmt.Errorf("%w: decoding game list: %w", ErrCatalog, err)
	}

	return games, nil
}

// InstallManifest resolves the install manifest for appName.
// It returns ErrGameNotFound when the catalog does not know the game.
func (c *HTTPClient) InstallManifest(ctx context.Context, tok auth.Token, appName string) (*Manifest, error) {
	if err := checkToken(tok); err != nil {
		return nil, err
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetAuthToken(tok.AccessToken).
		SetPathParam("appName", appName).
		Get("/games/{appName}/manifest")
	if err != nil {
		return nil, fmt.Errorf("%w: resolving manifest for %s: %w", ErrCatalog, appName, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", appName, statusError(resp.StatusCode(), ErrGameNotFound))
	}
	if resp.IsError() {
		return nil, fmt.Errorf("resolving manifest for %s: %w", appName, statusError(resp.StatusCode(), ErrCatalog))
	}

	var m Manifest
	if err := json.Unmarshal(resp.Body(), &m); err != nil {
		return nil, fmt.Errorf("%w: decoding manifest for %s: %w", ErrCatalog, appName, err)
	}
	if m.ID == "" {
		return nil, fmt.Errorf("%w: manifest for %s has no id", ErrCatalog, appName)
	}

	return &m, nil
}

// statusError classifies a non-success status code. Rejected credentials are
// additionally reported as auth.ErrAuthRequired.
func statusError(code int, sentinel error) error {
	se := &StatusError{err: sentinel, code: code}
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		return fmt.Errorf("%w: %w", auth.ErrAuthRequired, se)
	}
	return se
}

// checkToken rejects tokens that cannot be sent as a bearer header, so they
// surface as an authentication problem instead of a transport failure.
func checkToken(tok auth.Token) error {
	if err := httpval.ValidateHeaderValue(tok.AccessToken); err != nil {
		return fmt.Errorf("%w: access token: %w", auth.ErrAuthRequired, err)
	}
	return nil
}
