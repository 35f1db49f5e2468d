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

package schema

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schemas", r.URL.Path)
		_, _ = w.Write([]byte(`{"schemas": []}`))
	}))
	defer server.Close()

	out, err := execute(t, server.URL, "list")
	assert.NoError(t, err)
	assert.Contains(t, out, "No schemas found")
}

func TestListTruncation(t *testing.T) {
	longDescription := strings.Repeat("d", 80)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"schemas": [{
			"id": "` + testSchemaID + `",
			"name": "orders",
			"version": "1.0.0",
			"description": "` + longDescription + `",
			"schema_definition": {},
			"created_at": "2025-03-14T09:26:53Z",
			"updated_at": "2025-03-14T09:26:53Z"
		}]}`))
	}))
	defer server.Close()

	out, err := execute(t, server.URL, "list")
	assert.NoError(t, err)
	assert.Contains(t, out, "123e4567...")
	assert.NotContains(t, out, testSchemaID)
	assert.Contains(t, out, strings.Repeat("d", 50)+"...")
	assert.NotContains(t, out, strings.Repeat("d", 51))

	out, err = execute(t, server.URL, "list", "--full")
	assert.NoError(t, err)
	assert.Contains(t, out, testSchemaID)
}

func TestListJSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"schemas": [` + testSchema + `]}`))
	}))
	defer server.Close()

	// JSON mode bypasses every truncation rule: full id, full description.
	out, err := execute(t, server.URL, "list", "--json")
	assert.NoError(t, err)
	assert.Contains(t, out, `"id": "`+testSchemaID+`"`)
	assert.NotContains(t, out, "123e4567...")
}
