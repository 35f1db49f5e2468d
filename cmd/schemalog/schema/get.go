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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/schemalog-team/schemalog/api/types"
	"github.com/schemalog-team/schemalog/cmd/schemalog/config"
	"github.com/schemalog-team/schemalog/pkg/render"
	schemadef "github.com/schemalog-team/schemalog/pkg/schema"
)

var (
	getID      string
	getName    string
	getVersion string
	getJSON    bool
)

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Get a single schema by id or by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Selector conflicts are usage errors; they terminate before any
			// network call.
			if getID != "" && getName != "" {
				return errors.New("cannot specify both --id and --name")
			}
			if getID == "" && getName == "" {
				return errors.New("must specify either --id or --name")
			}

			var id uuid.UUID
			if getID != "" {
				parsed, err := uuid.Parse(getID)
				if err != nil {
					return fmt.Errorf("parse schema id: %w", err)
				}
				id = parsed
			}

			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				cli.Close()
			}()

			ctx := context.Background()
			var schema types.Schema
			if getID != "" {
				// Version is meaningless once the id pins an exact revision.
				if getVersion != "" {
					cmd.Println("Warning: --version is ignored when using --id")
				}

				body, err := cli.Get(ctx, "/schemas/"+id.String(), nil)
				if err != nil {
					return err
				}
				if err := json.Unmarshal(body, &schema); err != nil {
					return fmt.Errorf("decode schema: %w", err)
				}
			} else {
				params := url.Values{}
				params.Set("name", getName)
				if getVersion != "" {
					params.Set("version", getVersion)
				}

				body, err := cli.Get(ctx, "/schemas", params)
				if err != nil {
					return err
				}

				var list types.SchemaList
				if err := json.Unmarshal(body, &list); err != nil {
					return fmt.Errorf("decode schemas: %w", err)
				}

				if len(list.Schemas) == 0 {
					if getVersion != "" {
						return fmt.Errorf("no schema found with name '%s' and version %s", getName, getVersion)
					}
					return fmt.Errorf("no schema found with name '%s'", getName)
				}
				if len(list.Schemas) > 1 {
					cmd.Printf("Warning: found %d schemas, displaying the first one\n\n", len(list.Schemas))
				}
				schema = list.Schemas[0]
			}

			if getJSON {
				encoded, err := render.MarshalIndent(schema)
				if err != nil {
					return err
				}
				cmd.Println(encoded)
				return nil
			}

			return printSchema(cmd, schema)
		},
	}
}

func printSchema(cmd *cobra.Command, schema types.Schema) error {
	def, err := schemadef.ParseDefinition(schema.Definition)
	if err != nil {
		return err
	}

	dt := table.NewWriter()
	dt.Style().Options.DrawBorder = false
	dt.Style().Options.SeparateColumns = false
	dt.Style().Options.SeparateFooter = false
	dt.Style().Options.SeparateHeader = false
	dt.Style().Options.SeparateRows = false
	dt.AppendHeader(table.Row{
		"FIELD",
		"TYPE",
		"REQUIRED",
		"CONSTRAINTS",
	})
	for _, prop := range def.Properties() {
		required := ""
		if prop.Required {
			required = "✓"
		}
		dt.AppendRow(table.Row{
			prop.Name,
			prop.Type,
			required,
			prop.ConstraintsString(),
		})
	}

	description := "N/A"
	if schema.Description != nil && *schema.Description != "" {
		description = *schema.Description
	}

	tw := table.NewWriter()
	tw.SetTitle("Schema: %s", schema.Name)
	tw.AppendRows([]table.Row{
		{"ID", schema.ID.String()},
		{"Name", schema.Name},
		{"Version", schema.Version},
		{"Description", description},
		{"Created At", render.Timestamp(schema.CreatedAt)},
		{"Updated At", render.Timestamp(schema.UpdatedAt)},
		{"Schema Definition", dt.Render()},
	})
	cmd.Printf("%s\n", tw.Render())

	return nil
}

func init() {
	cmd := newGetCommand()
	cmd.Flags().StringVar(
		&getID,
		"id",
		"",
		"Schema UUID",
	)
	cmd.Flags().StringVarP(
		&getName,
		"name",
		"n",
		"",
		"Schema name",
	)
	cmd.Flags().StringVarP(
		&getVersion,
		"version",
		"v",
		"",
		"Schema version (defaults to latest)",
	)
	cmd.Flags().BoolVarP(
		&getJSON,
		"json",
		"j",
		false,
		"Output as JSON",
	)
	SubCmd.AddCommand(cmd)
}
