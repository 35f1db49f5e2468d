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
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/schemalog-team/schemalog/api/types"
	"github.com/schemalog-team/schemalog/cmd/schemalog/config"
	"github.com/schemalog-team/schemalog/pkg/render"
)

var (
	listFull bool
	listJSON bool
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all schemas in the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				cli.Close()
			}()

			ctx := context.Background()
			body, err := cli.Get(ctx, "/schemas", nil)
			if err != nil {
				return err
			}

			var list types.SchemaList
			if err := json.Unmarshal(body, &list); err != nil {
				return fmt.Errorf("decode schemas: %w", err)
			}

			if len(list.Schemas) == 0 {
				cmd.Println("No schemas found")
				return nil
			}

			if listJSON {
				encoded, err := render.MarshalIndent(list.Schemas)
				if err != nil {
					return err
				}
				cmd.Println(encoded)
				return nil
			}

			tw := table.NewWriter()
			tw.Style().Options.DrawBorder = false
			tw.Style().Options.SeparateColumns = false
			tw.Style().Options.SeparateFooter = false
			tw.Style().Options.SeparateHeader = false
			tw.Style().Options.SeparateRows = false
			tw.AppendHeader(table.Row{
				"ID",
				"NAME",
				"VERSION",
				"DESCRIPTION",
			})
			for _, schema := range list.Schemas {
				description := ""
				if schema.Description != nil {
					description = *schema.Description
				}
				tw.AppendRow(table.Row{
					render.ID(schema.ID.String(), listFull),
					schema.Name,
					schema.Version,
					render.Preview(description),
				})
			}
			cmd.Printf("%s\n", tw.Render())

			return nil
		},
	}
}

func init() {
	cmd := newListCommand()
	cmd.Flags().BoolVarP(
		&listFull,
		"full",
		"f",
		false,
		"Show full UUIDs",
	)
	cmd.Flags().BoolVarP(
		&listJSON,
		"json",
		"j",
		false,
		"Output as JSON",
	)
	SubCmd.AddCommand(cmd)
}
