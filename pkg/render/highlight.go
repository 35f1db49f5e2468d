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

package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	keyColor     = text.FgHiCyan
	stringColor  = text.FgGreen
	numberColor  = text.FgHiMagenta
	literalColor = text.FgYellow
)

// HighlightJSON pretty-prints the given JSON document with 2-space
// indentation and ANSI syntax highlighting. Colors follow the global
// go-pretty text settings, so piping through text.DisableColors() yields the
// plain indented form.
func HighlightJSON(raw json.RawMessage) string {
	out, err := highlight(raw)
	if err != nil {
		return IndentJSON(raw)
	}
	return out
}

// frame tracks one open container while re-emitting the token stream.
type frame struct {
	object bool
	key    bool // next string token is an object key
	items  int
}

func highlight(raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var out strings.Builder
	var stack []frame
	consumed := false

	indent := func() {
		out.WriteString(strings.Repeat("  ", len(stack)))
	}

	// separate writes the separator owed before the next element.
	separate := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		if top.object && !top.key {
			// value position, ": " was already written after the key
			return
		}
		if top.items > 0 {
			out.WriteString(",")
		}
		out.WriteString("\n")
		indent()
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		consumed = true

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				separate()
				out.WriteString(v.String())
				stack = append(stack, frame{object: v == '{', key: v == '{'})
			case '}', ']':
				closing := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if closing.items > 0 {
					out.WriteString("\n")
					indent()
				}
				out.WriteString(v.String())
				settle(&stack)
			}
		case string:
			if top(stack) != nil && top(stack).object && top(stack).key {
				separate()
				out.WriteString(keyColor.Sprint(quoteJSON(v)))
				out.WriteString(": ")
				top(stack).key = false
				top(stack).items++
				continue
			}
			separate()
			out.WriteString(stringColor.Sprint(quoteJSON(v)))
			settle(&stack)
		case json.Number:
			separate()
			out.WriteString(numberColor.Sprint(v.String()))
			settle(&stack)
		case bool:
			separate()
			out.WriteString(literalColor.Sprint(strconv.FormatBool(v)))
			settle(&stack)
		case nil:
			separate()
			out.WriteString(literalColor.Sprint("null"))
			settle(&stack)
		}
	}

	// A bare EOF with containers still open means the document was
	// truncated; the decoder does not always report that itself.
	if !consumed || len(stack) != 0 {
		return "", errors.New("unexpected end of JSON document")
	}

	return out.String(), nil
}

// quoteJSON quotes a string with JSON escape syntax, not Go's, so the
// rendered document stays valid JSON when colors are disabled.
func quoteJSON(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func top(stack []frame) *frame {
	if len(stack) == 0 {
		return nil
	}
	return &stack[len(stack)-1]
}

// settle records that a value finished at the current nesting level.
func settle(stack *[]frame) {
	t := top(*stack)
	if t == nil {
		return
	}
	if t.object {
		t.key = true
		return
	}
	t.items++
}
