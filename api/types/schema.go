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

// Package types provides the wire-level models of the registry API.
package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Schema is a named, versioned JSON-Schema definition stored in the registry.
// Definition keeps the raw `schema_definition` bytes so that JSON output is
// lossless and property order survives decoding.
type Schema struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description *string         `json:"description"`
	Definition  json.RawMessage `json:"schema_definition"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SchemaList is the response envelope of GET /schemas.
type SchemaList struct {
	Schemas []Schema `json:"schemas"`
}
