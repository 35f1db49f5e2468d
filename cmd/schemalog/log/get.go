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
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/schemalog-team/schemalog/api/types"
	"github.com/schemalog-team/schemalog/cmd/schemalog/config"
	"github.com/schemalog-team/schemalog/pkg/render"
)

var (
	getFull bool
	getJSON bool
)

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [log id]",
		Short: "Get a single log record by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("log id is required")
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse log id: %w", err)
			}

			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				cli.Close()
			}()

			ctx := context.Background()
			body, err := cli.Get(ctx, "/logs/"+strconv.FormatInt(id, 10), nil)
			if err != nil {
				return err
			}

			var record types.LogRecord
			if err := json.Unmarshal(body, &record); err != nil {
				return fmt.Errorf("decode log: %w", err)
			}

			if getJSON {
				encoded, err := render.MarshalIndent(record)
				if err != nil {
					return err
				}
				cmd.Println(encoded)
				return nil
			}

			tw := table.NewWriter()
			tw.SetTitle("Log: %d", record.ID)
			tw.AppendRows([]table.Row{
				{"Log ID", strconv.FormatInt(record.ID, 10)},
				{"Schema ID", render.ID(record.SchemaID.String(), getFull)},
				{"Created At", render.Timestamp(record.CreatedAt)},
				{"Data", render.HighlightJSON(record.Data)},
			})
			cmd.Printf("%s\n", tw.Render())

			return nil
		},
	}
}

func init() {
	cmd := newGetCommand()
	cmd.Flags().BoolVarP(
		&getFull,
		"full",
		"f",
		false,
		"Show full UUIDs",
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
