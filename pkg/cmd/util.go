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
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	vecexpr "github.com/foresight-mining/vecexpr"
)

// getFlag fetches a boolean flag, exiting the process on a programming
// error (an undeclared flag name).
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// readCSVColumns loads a CSV file into a ColumnSet. The first row is taken
// as column headers. Each column is classified as real-valued if every data
// row parses as a float64, and string-valued otherwise.
func readCSVColumns(filename string) (*vecexpr.ColumnSet, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty csv file: %s", filename)
	}

	header := rows[0]
	data := rows[1:]
	cols := vecexpr.NewColumnSet()

	for c, name := range header {
		if isRealColumn(data, c) {
			values := make([]float64, len(data))

			for i, row := range data {
				v, _ := strconv.ParseFloat(strings.TrimSpace(row[c]), 64)
				values[i] = v
			}

			cols.AddReal(name, values)
		} else {
			values := make([]string, len(data))
			for i, row := range data {
				values[i] = row[c]
			}

			cols.AddStr(name, values)
		}
	}

	return cols, nil
}

func isRealColumn(data [][]string, col int) bool {
	for _, row := range data {
		if _, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64); err != nil {
			return false
		}
	}

	return true
}

// printParseError renders a ParseError with a caret pointing at the
// offending span, in the same spirit as a compiler diagnostic.
func printParseError(text string, err *vecexpr.ParseError) {
	fmt.Fprintln(os.Stderr, err.Error())
	fmt.Fprintln(os.Stderr, text)
	width := err.Span.End - err.Span.Start
	if width < 1 {
		width = 1
	}

	fmt.Fprintln(os.Stderr, strings.Repeat(" ", err.Span.Start)+strings.Repeat("^", width))
}
