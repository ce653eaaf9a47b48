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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func columnsForEval() *ColumnSet {
	cols := NewColumnSet()
	cols.AddReal("a", []float64{1, 2, 3, 4, 5, 6, 7})
	cols.AddReal("b", []float64{7, 6, 5, 4, 3, 2, 1})
	cols.AddStr("name", []string{"x", "y", "x", "z", "y", "x", "z"})

	return cols
}

func TestEvalRealArithmetic(t *testing.T) {
	cols := columnsForEval()

	expr, err := ParseReal("a + b * 2 - a / b", cols)
	require.Nil(t, err)

	prog := PlanReal(expr)
	got := prog.EvalReal(cols, NewRegisters(0), cols.Len())

	a := cols.RealColumn(0)
	b := cols.RealColumn(1)
	want := make([]float64, cols.Len())

	for i := range want {
		want[i] = a[i] + b[i]*2 - a[i]/b[i]
	}

	assert.Equal(t, want, got)
}

func TestEvalBoolNonShortCircuit(t *testing.T) {
	cols := columnsForEval()

	expr, err := ParseBool("a > 3 && b > 3", cols)
	require.Nil(t, err)

	prog := PlanBool(expr)
	got := prog.EvalBool(cols, NewRegisters(0), cols.Len())

	a := cols.RealColumn(0)
	b := cols.RealColumn(1)
	want := make([]bool, cols.Len())

	for i := range want {
		want[i] = a[i] > 3 && b[i] > 3
	}

	assert.Equal(t, want, got)
}

func TestEvalStringComparison(t *testing.T) {
	cols := columnsForEval()

	expr, err := ParseBool(`name == "x"`, cols)
	require.Nil(t, err)

	prog := PlanBool(expr)
	got := prog.EvalBool(cols, NewRegisters(0), cols.Len())

	assert.Equal(t, []bool{true, false, true, false, false, true, false}, got)
}

func TestEvalDivisionByZeroProducesInf(t *testing.T) {
	cols := NewColumnSet()
	cols.AddReal("a", []float64{1, -1, 0})
	cols.AddReal("z", []float64{0, 0, 0})

	expr, err := ParseReal("a / z", cols)
	require.Nil(t, err)

	got := PlanReal(expr).EvalReal(cols, NewRegisters(0), cols.Len())

	assert.True(t, math.IsInf(got[0], 1))
	assert.True(t, math.IsInf(got[1], -1))
	assert.True(t, math.IsNaN(got[2]))
}

func TestEvalPowUsesMathPow(t *testing.T) {
	cols := NewColumnSet()
	cols.AddReal("a", []float64{2, -8, 0})
	cols.AddReal("b", []float64{10, 1.0 / 3.0, 0})

	expr, err := ParseReal("a ^ b", cols)
	require.Nil(t, err)

	got := PlanReal(expr).EvalReal(cols, NewRegisters(0), cols.Len())

	want := []float64{math.Pow(2, 10), math.Pow(-8, 1.0/3.0), math.Pow(0, 0)}

	// math.Pow(-8, 1/3) is NaN, and NaN never compares equal to itself, so
	// the rows are compared by their IEEE-754 bit patterns.
	bits := func(xs []float64) []uint64 {
		out := make([]uint64, len(xs))
		for i, x := range xs {
			out[i] = math.Float64bits(x)
		}

		return out
	}

	assert.Equal(t, bits(want), bits(got))
}

func TestEvalUnaryMinusOutsidePow(t *testing.T) {
	cols := NewColumnSet()
	cols.AddReal("x", []float64{2, -3})

	expr, err := ParseReal("-x ^ 2", cols)
	require.Nil(t, err)

	got := PlanReal(expr).EvalReal(cols, NewRegisters(0), cols.Len())

	assert.Equal(t, []float64{-4, -9}, got)
}

func TestEvalChunkedMatchesSequential(t *testing.T) {
	cols := NewColumnSet()

	n := 971
	a := make([]float64, n)
	b := make([]float64, n)

	for i := range a {
		a[i] = float64(i)
		b[i] = float64(n - i)
	}

	cols.AddReal("a", a)
	cols.AddReal("b", b)

	expr, err := ParseReal("(a + b) * a - b / (a + 1)", cols)
	require.Nil(t, err)

	prog := PlanReal(expr)

	sequential := prog.EvalReal(cols, NewRegisters(0), n)

	for _, chunkSize := range []int{1, 7, 64, 500, n, n + 100} {
		chunked := prog.EvalRealChunked(cols, n, chunkSize)
		assert.Equal(t, sequential, chunked, "chunk size %d should match sequential evaluation exactly", chunkSize)
	}
}

func TestEvalBoolChunkedMatchesSequential(t *testing.T) {
	cols := NewColumnSet()

	n := 500
	a := make([]float64, n)

	for i := range a {
		a[i] = float64(i % 17)
	}

	cols.AddReal("a", a)

	expr, err := ParseBool("a > 5 && !(a > 10)", cols)
	require.Nil(t, err)

	prog := PlanBool(expr)
	sequential := prog.EvalBool(cols, NewRegisters(0), n)
	chunked := prog.EvalBoolChunked(cols, n, 33)

	assert.Equal(t, sequential, chunked)
}

func TestRegistersGrowAndAreReusable(t *testing.T) {
	regs := NewRegisters(4)

	cols := NewColumnSet()
	cols.AddReal("a", []float64{1, 2, 3, 4})

	small, err := ParseReal("a + 1", cols)
	require.Nil(t, err)

	out := PlanReal(small).EvalReal(cols, regs, 4)
	assert.Equal(t, []float64{2, 3, 4, 5}, out)

	bigCols := NewColumnSet()
	big := make([]float64, 100)

	for i := range big {
		big[i] = float64(i)
	}

	bigCols.AddReal("a", big)

	bigExpr, err := ParseReal("a * 2", bigCols)
	require.Nil(t, err)

	out2 := PlanReal(bigExpr).EvalReal(bigCols, regs, 100)
	assert.Equal(t, float64(198), out2[99])
	assert.GreaterOrEqual(t, regs.RowCapacity(), 100)
}
