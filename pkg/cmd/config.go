// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// config holds defaults read from a .vecexpr.yaml file, overridable by
// per-command flags.
type config struct {
	ChunkSize int `yaml:"chunk_size"`
}

// loadConfig reads the file named by --config, if set, falling back to
// ./.vecexpr.yaml if present, or to zero-valued defaults otherwise. Parse
// errors are logged and otherwise ignored, since every field has a sane
// zero value.
func loadConfig(cmd *cobra.Command) config {
	var cfg config

	path := getString(cmd, "config")
	if path == "" {
		path = ".vecexpr.yaml"
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		log.WithError(err).WithField("path", path).Warn("failed to parse config file")
	}

	return cfg
}
