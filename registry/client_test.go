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

package registry_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/schemalog-team/schemalog/registry"
)

func dial(t *testing.T, baseURL string, opts ...registry.Option) *registry.Client {
	t.Helper()

	opts = append(opts, registry.WithLogger(zap.NewNop()))
	cli, err := registry.Dial(baseURL, opts...)
	assert.NoError(t, err)
	t.Cleanup(cli.Close)

	return cli
}

func TestGet(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"schemas": []}`))
	}))
	defer server.Close()

	cli := dial(t, server.URL)

	params := url.Values{}
	params.Set("name", "orders")
	body, err := cli.Get(context.Background(), "/schemas", params)
	assert.NoError(t, err)
	assert.Equal(t, `{"schemas": []}`, string(body))
	assert.Equal(t, "/schemas", gotPath)
	assert.Equal(t, "orders", gotQuery.Get("name"))
}

func TestAPIKeyHeader(t *testing.T) {
	var gotKey string
	var gotHasKey bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		_, gotHasKey = r.Header["X-Api-Key"]
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cli := dial(t, server.URL, registry.WithAPIKey("secret-key"))
	_, err := cli.Get(context.Background(), "/schemas", nil)
	assert.NoError(t, err)
	assert.Equal(t, "secret-key", gotKey)

	// An empty key omits the header entirely.
	cli = dial(t, server.URL)
	_, err = cli.Get(context.Background(), "/schemas", nil)
	assert.NoError(t, err)
	assert.False(t, gotHasKey)
}

func TestStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "schema not found"}`))
	}))
	defer server.Close()

	cli := dial(t, server.URL)
	body, err := cli.Get(context.Background(), "/schemas/unknown", nil)
	assert.Nil(t, body)

	var statusErr *registry.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, `{"error": "schema not found"}`, statusErr.Body)
	assert.Contains(t, statusErr.Error(), "HTTP 404")
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	cli := dial(t, server.URL)
	body, err := cli.Get(context.Background(), "/schemas", nil)
	assert.Nil(t, body)

	var transportErr *registry.TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.NotNil(t, errors.Unwrap(transportErr))
}

func TestPost(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	cli := dial(t, server.URL)
	body, err := cli.Post(context.Background(), "/logs/query", map[string]string{"name": "orders"})
	assert.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, string(body))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]any{"name": "orders"}, gotBody)
}
