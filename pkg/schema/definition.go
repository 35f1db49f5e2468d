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

// Package schema extracts field descriptors from JSON-Schema fragments.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Definition is the decoded form of a schema_definition fragment. Properties
// keep the order in which they were declared in the source document.
type Definition struct {
	properties []Property
}

// Property describes a single field declared by a schema definition.
type Property struct {
	Name        string
	Type        string
	Required    bool
	Constraints []Constraint
}

// Constraint is one validation rule of a property, e.g. {"minLength", "3"}.
type Constraint struct {
	Key   string
	Value string
}

// String renders the constraint as "key: value".
func (c Constraint) String() string {
	return fmt.Sprintf("%s: %s", c.Key, c.Value)
}

// ConstraintsString joins the constraints of a property, one per line. A
// property without constraints yields an empty string.
func (p Property) ConstraintsString() string {
	lines := make([]string, 0, len(p.Constraints))
	for _, c := range p.Constraints {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n")
}

// Properties returns the fields of the definition in declared order.
func (d *Definition) Properties() []Property {
	return d.properties
}

// propertySpec is the subset of JSON-Schema keywords the renderer knows
// about. Numeric bounds stay json.Number so they render exactly as written.
type propertySpec struct {
	Type      *string      `json:"type"`
	Enum      []any        `json:"enum"`
	Pattern   *string      `json:"pattern"`
	MinLength *json.Number `json:"minLength"`
	MaxLength *json.Number `json:"maxLength"`
	Minimum   *json.Number `json:"minimum"`
	Maximum   *json.Number `json:"maximum"`
	Format    *string      `json:"format"`
}

// constraints builds the constraint list of a property. The order is fixed by
// this function, never by the order of keys in the source document: enum,
// pattern, minLength, maxLength, minimum, maximum, format.
func (s *propertySpec) constraints() []Constraint {
	var cs []Constraint
	if s.Enum != nil {
		values := make([]string, 0, len(s.Enum))
		for _, v := range s.Enum {
			values = append(values, fmt.Sprintf("%v", v))
		}
		cs = append(cs, Constraint{"enum", "[" + strings.Join(values, ", ") + "]"})
	}
	if s.Pattern != nil {
		cs = append(cs, Constraint{"pattern", *s.Pattern})
	}
	if s.MinLength != nil {
		cs = append(cs, Constraint{"minLength", s.MinLength.String()})
	}
	if s.MaxLength != nil {
		cs = append(cs, Constraint{"maxLength", s.MaxLength.String()})
	}
	if s.Minimum != nil {
		cs = append(cs, Constraint{"minimum", s.Minimum.String()})
	}
	if s.Maximum != nil {
		cs = append(cs, Constraint{"maximum", s.Maximum.String()})
	}
	if s.Format != nil {
		cs = append(cs, Constraint{"format", *s.Format})
	}
	return cs
}

// ParseDefinition decodes a schema_definition fragment. encoding/json maps
// would lose the declared property order, so the properties object is walked
// with a token decoder instead.
func ParseDefinition(raw json.RawMessage) (*Definition, error) {
	if len(raw) == 0 {
		return &Definition{}, nil
	}

	var shell struct {
		Properties json.RawMessage `json:"properties"`
		Required   []string        `json:"required"`
	}
	if err := json.Unmarshal(raw, &shell); err != nil {
		return nil, fmt.Errorf("decode schema definition: %w", err)
	}

	required := make(map[string]bool, len(shell.Required))
	for _, name := range shell.Required {
		required[name] = true
	}

	def := &Definition{}
	if len(shell.Properties) == 0 {
		return def, nil
	}

	dec := json.NewDecoder(bytes.NewReader(shell.Properties))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("properties is not an object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode property name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("property name is not a string")
		}

		var spec propertySpec
		if err := dec.Decode(&spec); err != nil {
			return nil, fmt.Errorf("decode property %q: %w", name, err)
		}

		typ := "N/A"
		if spec.Type != nil {
			typ = *spec.Type
		}

		def.properties = append(def.properties, Property{
			Name:        name,
			Type:        typ,
			Required:    required[name],
			Constraints: spec.constraints(),
		})
	}

	return def, nil
}
