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

package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/schemalog-team/schemalog/cmd/schemalog/config"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the registry server is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				cli.Close()
			}()

			ctx := context.Background()
			body, err := cli.Get(ctx, "/health", nil)
			if err != nil {
				return err
			}

			var status struct {
				Status    string `json:"status"`
				Service   string `json:"service"`
				Timestamp string `json:"timestamp"`
			}
			if err := json.Unmarshal(body, &status); err != nil {
				return err
			}

			cmd.Printf("%s: %s\n", status.Service, status.Status)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newHealthCmd())
}
