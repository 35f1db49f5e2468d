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

// Package config resolves the CLI configuration. Every invocation is
// stateless: nothing is persisted between runs.
package config

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/schemalog-team/schemalog/registry"
)

const (
	// DefaultAddr is the default address of the registry server.
	DefaultAddr = "http://localhost:8081"

	// DefaultAPIKey is the fallback key used when LOG_SERVER_API_KEY is unset.
	DefaultAPIKey = "secret-key"
)

// Addr is the address of the registry server, bound to the --addr flag.
var Addr string

// APIKey is the static API key, bound to the --api-key flag.
var APIKey string

func init() {
	viper.SetDefault("addr", DefaultAddr)
	viper.SetDefault("apiKey", DefaultAPIKey)
	_ = viper.BindEnv("addr", "SCHEMALOG_ADDR")
	_ = viper.BindEnv("apiKey", "LOG_SERVER_API_KEY")
}

// Dial creates a registry client from the resolved configuration. There is a
// single client per invocation; callers must Close it before exiting.
func Dial() (*registry.Client, error) {
	logger := zap.Must(zap.NewProduction())
	return registry.Dial(
		viper.GetString("addr"),
		registry.WithAPIKey(viper.GetString("apiKey")),
		registry.WithLogger(logger),
	)
}
