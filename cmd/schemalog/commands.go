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

// Package main is the entry point of the Schemalog CLI.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/schemalog-team/schemalog/cmd/schemalog/config"
	logcmd "github.com/schemalog-team/schemalog/cmd/schemalog/log"
	"github.com/schemalog-team/schemalog/cmd/schemalog/schema"
)

var rootCmd = &cobra.Command{
	Use:   "schemalog",
	Short: "Client for the log-schema registry",
}

// Run executes CLI.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}

	return 0
}

func init() {
	rootCmd.AddCommand(schema.SubCmd)
	rootCmd.AddCommand(logcmd.SubCmd)

	rootCmd.PersistentFlags().StringVar(
		&config.Addr,
		"addr",
		config.DefaultAddr,
		"Address of the registry server",
	)
	rootCmd.PersistentFlags().StringVar(
		&config.APIKey,
		"api-key",
		"",
		"Static API key sent in the X-Api-Key header",
	)
	_ = viper.BindPFlag("addr", rootCmd.PersistentFlags().Lookup("addr"))
	_ = viper.BindPFlag("apiKey", rootCmd.PersistentFlags().Lookup("api-key"))
}
