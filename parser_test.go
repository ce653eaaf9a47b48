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
package vecexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver() *ColumnSet {
	cols := NewColumnSet()
	cols.AddReal("a", []float64{1, 2, 3})
	cols.AddReal("b", []float64{4, 5, 6})
	cols.AddReal("c", []float64{7, 8, 9})
	cols.AddStr("name", []string{"x", "y", "z"})
	cols.AddStr("other", []string{"x", "n", "z"})

	return cols
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name string
		text string
		sort Sort
	}{
		{"real arithmetic", "a + b * c", SortReal},
		{"real precedence", "a + b ^ c - 1", SortReal},
		{"comparison", "a > b", SortBool},
		{"logical", "a > b && b > c", SortBool},
		{"negation", "!(a > b)", SortBool},
		{"string equality", "name == \"x\"", SortBool},
		{"string inequality", "name != other", SortBool},
		{"parenthesized real", "(a + b) * c", SortReal},
		{"parenthesized bool inside logical", "(a > 0) || (b > 0)", SortBool},
		{"unary minus", "-a + b", SortReal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.text, testResolver())
			require.Nil(t, err, "unexpected parse error: %v", err)
			assert.Equal(t, tt.sort, expr.Sort)
		})
	}
}

func TestParsePowRightAssociative(t *testing.T) {
	expr, err := ParseReal("a ^ b ^ c", testResolver())
	require.Nil(t, err)

	bin, ok := expr.(RealBinary)
	require.True(t, ok)
	assert.Equal(t, OpPow, bin.Op)

	_, lhsIsVar := bin.LHS.(RealVar)
	assert.True(t, lhsIsVar, "left operand of a^b^c should be the variable a")

	rhs, ok := bin.RHS.(RealBinary)
	require.True(t, ok, "right operand of a^b^c should itself be a power expression")
	assert.Equal(t, OpPow, rhs.Op)
}

func TestParseUnaryMinusLowerPrecedenceThanPow(t *testing.T) {
	expr, err := ParseReal("-a ^ b", testResolver())
	require.Nil(t, err)

	neg, ok := expr.(RealNeg)
	require.True(t, ok, "-a ^ b should parse as Neg(Pow(a, b)), got %#v", expr)

	bin, ok := neg.X.(RealBinary)
	require.True(t, ok, "operand of unary minus should be a power expression")
	assert.Equal(t, OpPow, bin.Op)

	_, lhsIsVar := bin.LHS.(RealVar)
	assert.True(t, lhsIsVar, "left operand of the power expression should be the variable a")
}

func TestParseUnknownVariable(t *testing.T) {
	_, err := Parse("unknown_var + 1", testResolver())
	require.NotNil(t, err)
	assert.Equal(t, ErrUnknownVariable, err.Kind)
}

func TestParseSortMismatch(t *testing.T) {
	_, err := ParseBool("a + b", testResolver())
	require.NotNil(t, err)
	assert.Equal(t, ErrSortMismatch, err.Kind)

	_, err = ParseReal("a > b", testResolver())
	require.NotNil(t, err)
	assert.Equal(t, ErrSortMismatch, err.Kind)
}

func TestParseRealVariableUsedAsString(t *testing.T) {
	_, err := Parse("a == \"x\"", testResolver())
	require.NotNil(t, err)
}

func TestParseLexError(t *testing.T) {
	_, err := Parse("a + @", testResolver())
	require.NotNil(t, err)
	assert.Equal(t, ErrLex, err.Kind)
}

func TestParseStringLiteralHasNoEscapes(t *testing.T) {
	expr, err := ParseBool(`name == "x"`, testResolver())
	require.Nil(t, err)

	cmp, ok := expr.(StrCompare)
	require.True(t, ok)

	lit, ok := cmp.RHS.(StrLiteral)
	require.True(t, ok)
	assert.Equal(t, "x", lit.Value)

	_, err = Parse(`name == "a\b"`, testResolver())
	require.NotNil(t, err, "a backslash in a string literal should be a lex error, not an escape")
	assert.Equal(t, ErrLex, err.Kind)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("a + * b", testResolver())
	require.NotNil(t, err)
}
