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

// evalCmd evaluates an expression over the columns of a CSV file, optionally
// splitting the evaluation into row chunks evaluated concurrently.
var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression",
	Short: "Evaluate an expression over the columns of a CSV file.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		csvPath := getString(cmd, "csv")
		if csvPath == "" {
			fmt.Println("eval requires --csv")
			os.Exit(1)
		}

		cfg := loadConfig(cmd)

		cols, err := readCSVColumns(csvPath)
		if err != nil {
			log.WithError(err).Error("failed to load columns")
			os.Exit(2)
		}

		text := args[0]

		expr, perr := vecexpr.Parse(text, cols)
		if perr != nil {
			printParseError(text, perr)
			os.Exit(1)
		}

		prog := expr.Plan()
		n := cols.Len()
		chunkSize := cfg.ChunkSize

		if f := getInt(cmd, "chunk-size"); f > 0 {
			chunkSize = f
		}

		log.WithField("rows", n).WithField("chunk_size", chunkSize).Debug("evaluating expression")

		switch expr.Sort {
		case vecexpr.SortReal:
			var out []float64
			if chunkSize > 0 {
				out = prog.EvalRealChunked(cols, n, chunkSize)
			} else {
				out = prog.EvalReal(cols, vecexpr.NewRegisters(n), n)
			}

			for _, v := range out {
				fmt.Println(v)
			}
		case vecexpr.SortBool:
			var out []bool
			if chunkSize > 0 {
				out = prog.EvalBoolChunked(cols, n, chunkSize)
			} else {
				out = prog.EvalBool(cols, vecexpr.NewRegisters(n), n)
			}

			for _, v := range out {
				fmt.Println(v)
			}
		}
	},
}

func init() {
	evalCmd.Flags().String("csv", "", "CSV file supplying the input columns")
	evalCmd.Flags().Int("chunk-size", 0, "split evaluation into row chunks of this size, evaluated concurrently")
}
