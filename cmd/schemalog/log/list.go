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

package log

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/schemalog-team/schemalog/api/types"
	"github.com/schemalog-team/schemalog/cmd/schemalog/config"
	"github.com/schemalog-team/schemalog/pkg/render"
)

var (
	listFull   bool
	listJSON   bool
	listExpand bool
	listLimit  int
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list [schema name]",
		Aliases: []string{"ls"},
		Short:   "List stored logs of a schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("schema name is required")
			}
			schemaName := args[0]

			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				cli.Close()
			}()

			// Ordering and the limit bound are owned by the server; the
			// client never re-sorts or re-limits.
			params := url.Values{}
			params.Set("limit", strconv.Itoa(listLimit))

			ctx := context.Background()
			body, err := cli.Get(ctx, "/logs/schema/"+schemaName, params)
			if err != nil {
				return err
			}

			var list types.LogList
			if err := json.Unmarshal(body, &list); err != nil {
				return fmt.Errorf("decode logs: %w", err)
			}

			if len(list.Logs) == 0 {
				cmd.Printf("No logs found for schema '%s'\n", schemaName)
				return nil
			}

			if listJSON {
				encoded, err := render.MarshalIndent(list.Logs)
				if err != nil {
					return err
				}
				cmd.Println(encoded)
				return nil
			}

			tw := table.NewWriter()
			tw.SetTitle("Logs for Schema: %s", schemaName)
			tw.AppendHeader(table.Row{
				"LOG ID",
				"SCHEMA ID",
				"CREATED AT",
				"DATA PREVIEW",
			})
			for _, record := range list.Logs {
				data := render.PreviewJSON(record.Data)
				if listExpand {
					data = render.HighlightJSON(record.Data)
				}
				tw.AppendRow(table.Row{
					strconv.FormatInt(record.ID, 10),
					render.ID(record.SchemaID.String(), listFull),
					render.Timestamp(record.CreatedAt),
					data,
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
	cmd.Flags().BoolVarP(
		&listExpand,
		"expand",
		"e",
		false,
		"Show full log data (pretty-printed)",
	)
	cmd.Flags().IntVarP(
		&listLimit,
		"limit",
		"l",
		10,
		"Maximum number of logs to retrieve",
	)
	SubCmd.AddCommand(cmd)
}
