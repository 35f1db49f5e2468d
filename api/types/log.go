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

package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LogRecord is one stored log payload associated with a schema revision.
// The server assigns IDs in insertion order; the client never re-validates
// Data against the referenced schema.
type LogRecord struct {
	ID        int64           `json:"id"`
	SchemaID  uuid.UUID       `json:"schema_id"`
	Data      json.RawMessage `json:"log_data"`
	CreatedAt time.Time       `json:"created_at"`
}

// LogList is the response envelope of GET /logs/schema/{schema_name}.
type LogList struct {
	Logs []LogRecord `json:"logs"`
}
