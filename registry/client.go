/*
 * Copyright 2025 The Schemalog Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package registry provides a client for the log-schema registry service.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// requestTimeout bounds every request. There is no per-call override and no
// retry: each command issues exactly one request.
const requestTimeout = 30 * time.Second

// apiKeyHeader is the static authentication header of the registry.
const apiKeyHeader = "X-Api-Key"

// Option configures Options.
type Option func(*Options)

// WithAPIKey configures the API key sent with every request. An empty key
// omits the header entirely.
func WithAPIKey(key string) Option {
	return func(o *Options) { o.APIKey = key }
}

// WithLogger configures the Logger of the client.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithHTTPClient configures the underlying HTTP client. Tests use this to
// substitute a fake transport.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) { o.HTTPClient = client }
}

// Options configures how we set up the client.
type Options struct {
	// APIKey is the static key sent in the X-Api-Key header.
	APIKey string

	// Logger is the Logger of the client.
	Logger *zap.Logger

	// HTTPClient is the underlying HTTP client.
	HTTPClient *http.Client
}

// Client is a client for the registry service. One client issues at most one
// request per process invocation; it never retries and keeps no state between
// calls.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// Dial creates an instance of Client for the registry at the given base URL.
func Dial(baseURL string, opts ...Option) (*Client, error) {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	logger := options.Logger
	if logger == nil {
		l, err := zap.NewProduction()
		if err != nil {
			return nil, fmt.Errorf("new logger: %w", err)
		}
		logger = l
	}

	client := options.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  options.APIKey,
		client:  client,
		logger:  logger,
	}, nil
}

// Get issues a single GET request against the given path.
func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, params), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return c.do(req)
}

// Post issues a single POST request with a JSON body against the given path.
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// Close releases the connection resource of the client.
func (c *Client) Close() {
	c.client.CloseIdleConnections()
}

// do sends the request and normalizes failures: a response with a non-2xx
// status becomes a StatusError, a request that could not complete becomes a
// TransportError. Both are logged before they propagate; neither is retried.
func (c *Client) do(req *http.Request) ([]byte, error) {
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		transportErr := &TransportError{Err: err}
		c.logger.Error("request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err),
		)
		return nil, transportErr
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("close response body", zap.Error(err))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		transportErr := &TransportError{Err: err}
		c.logger.Error("read response body",
			zap.String("url", req.URL.String()),
			zap.Error(err),
		)
		return nil, transportErr
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
		c.logger.Error("unexpected status",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return nil, statusErr
	}

	return body, nil
}

func (c *Client) endpoint(path string, params url.Values) string {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	return endpoint
}
