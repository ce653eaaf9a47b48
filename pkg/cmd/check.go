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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	vecexpr "github.com/foresight-mining/vecexpr"
)

// checkCmd reports whether an expression parses, and under which sort.
var checkCmd = &cobra.Command{
	Use:   "check [flags] expression",
	Short: "Check that an expression parses and report its sort.",
	Long: `Check that an expression parses and report its sort.
	Variable names referenced by the expression are resolved against the
	columns named in the --csv file, if given, or accepted unconditionally
	otherwise.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		resolver, err := resolverFromFlags(cmd)
		if err != nil {
			log.WithError(err).Error("failed to load columns")
			os.Exit(2)
		}

		text := args[0]

		expr, perr := vecexpr.Parse(text, resolver)
		if perr != nil {
			printParseError(text, perr)
			os.Exit(1)
		}

		fmt.Printf("ok: %s expression\n", expr.Sort)
	},
}

func init() {
	checkCmd.Flags().String("csv", "", "CSV file used to resolve variable names")
}

// resolverFromFlags builds a NameResolver from the --csv flag, if given, or
// an always-real permissive resolver otherwise (so expressions can be
// syntax-checked without a dataset on hand).
func resolverFromFlags(cmd *cobra.Command) (vecexpr.NameResolver, error) {
	path := getString(cmd, "csv")
	if path == "" {
		return permissiveResolver{}, nil
	}

	return readCSVColumns(path)
}

// permissiveResolver resolves every name as a real variable, for syntax-only
// checking when no concrete dataset is available.
type permissiveResolver struct{}

func (permissiveResolver) ResolveReal(name string) (int, bool) {
	return 0, true
}

func (permissiveResolver) ResolveStr(name string) (int, bool) {
	return 0, false
}
