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

// Package render provides the truncation and formatting rules shared by all
// tabular views.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	// previewLimit is the number of characters a preview keeps before the
	// ellipsis marker is appended.
	previewLimit = 50

	// shortIDLen is the number of leading characters a shortened UUID keeps.
	shortIDLen = 8

	ellipsis = "..."
)

// ShortID returns the first eight characters of the given identifier plus an
// ellipsis marker.
func ShortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen] + ellipsis
}

// ID returns the canonical identifier when full is set, the shortened form
// otherwise.
func ID(id string, full bool) string {
	if full {
		return id
	}
	return ShortID(id)
}

// Preview bounds the given string to 50 characters. The ellipsis marker is
// appended if and only if the source exceeded the bound. The bound counts
// characters, not bytes, so multibyte input is never cut mid-rune.
func Preview(s string) string {
	if utf8.RuneCountInString(s) <= previewLimit {
		return s
	}
	return string([]rune(s)[:previewLimit]) + ellipsis
}

// PreviewJSON compacts the given JSON document and bounds it like Preview.
func PreviewJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return Preview(string(raw))
	}
	return Preview(buf.String())
}

// IndentJSON pretty-prints the given JSON document with 2-space indentation.
func IndentJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// MarshalIndent serializes the given validated model with 2-space
// indentation. Used by the JSON output mode, which bypasses every truncation
// rule.
func MarshalIndent(v any) (string, error) {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal JSON: %w", err)
	}
	return string(encoded), nil
}

// Timestamp formats a time for tabular views.
func Timestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
