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

package render_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/schemalog-team/schemalog/pkg/render"
)

func TestShortID(t *testing.T) {
	id := "123e4567-e89b-12d3-a456-426614174000"

	assert.Equal(t, "123e4567...", render.ShortID(id))
	assert.Equal(t, "123e4567...", render.ID(id, false))
	assert.Equal(t, id, render.ID(id, true))
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "short string unchanged",
			input:    "hello",
			expected: "hello",
		},
		{
			name:     "exactly fifty characters unchanged",
			input:    strings.Repeat("a", 50),
			expected: strings.Repeat("a", 50),
		},
		{
			name:     "fifty-one characters truncated",
			input:    strings.Repeat("a", 51),
			expected: strings.Repeat("a", 50) + "...",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "thirty multibyte characters unchanged",
			input:    strings.Repeat("é", 30),
			expected: strings.Repeat("é", 30),
		},
		{
			name:     "fifty multibyte characters unchanged",
			input:    strings.Repeat("é", 50),
			expected: strings.Repeat("é", 50),
		},
		{
			name:     "fifty-one multibyte characters truncated on a rune boundary",
			input:    strings.Repeat("é", 51),
			expected: strings.Repeat("é", 50) + "...",
		},
		{
			name:     "mixed-width input truncated by character count",
			input:    "a" + strings.Repeat("é", 51),
			expected: "a" + strings.Repeat("é", 49) + "...",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, render.Preview(test.input))
		})
	}
}

func TestPreviewLength(t *testing.T) {
	long := strings.Repeat("x", 80)
	assert.Len(t, render.Preview(long), 53)

	// the 53-character bound counts characters, and the result stays valid
	// UTF-8 whatever the rune widths are
	multibyte := render.Preview(strings.Repeat("é", 80))
	assert.Equal(t, 53, utf8.RuneCountInString(multibyte))
	assert.True(t, utf8.ValidString(multibyte))
}

func TestPreviewJSON(t *testing.T) {
	raw := json.RawMessage(`{
  "level": "info",
  "msg": "ok"
}`)
	assert.Equal(t, `{"level":"info","msg":"ok"}`, render.PreviewJSON(raw))

	big := json.RawMessage(`{"message":"` + strings.Repeat("a", 80) + `"}`)
	preview := render.PreviewJSON(big)
	assert.Len(t, preview, 53)
	assert.True(t, strings.HasSuffix(preview, "..."))
}

func TestIndentJSON(t *testing.T) {
	raw := json.RawMessage(`{"a":1,"b":[true,null]}`)
	expected := "{\n  \"a\": 1,\n  \"b\": [\n    true,\n    null\n  ]\n}"
	assert.Equal(t, expected, render.IndentJSON(raw))
}

func TestTimestamp(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "2025-03-14 09:26:53", render.Timestamp(at))
}
