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
	"golang.org/x/term"

	vecexpr "github.com/foresight-mining/vecexpr"
)

// terminalWidth returns the current terminal width, falling back to 80
// columns when stdout isn't a terminal (e.g. piped into a file).
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}

	return w
}

// planCmd parses and plans an expression, printing the resulting register
// counts and instruction listing.
var planCmd = &cobra.Command{
	Use:   "plan [flags] expression",
	Short: "Plan an expression into a linear register-machine program.",
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

		prog := expr.Plan()

		fmt.Printf("sort: %s\n", expr.Sort)
		fmt.Printf("registers: %d real, %d bool, %d str\n", prog.NumReal, prog.NumBool, prog.NumStr)
		fmt.Printf("instructions:\n")

		width := terminalWidth()

		for i, ins := range prog.Instrs {
			line := fmt.Sprintf("  %3d: %#v", i, ins)
			if len(line) > width {
				line = line[:width-3] + "..."
			}

			fmt.Println(line)
		}
	},
}

func init() {
	planCmd.Flags().String("csv", "", "CSV file used to resolve variable names")
}
