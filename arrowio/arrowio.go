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

// Package arrowio bridges vecexpr's plain Go column slices to Apache Arrow
// arrays, for callers that source or sink their data through Arrow (e.g. a
// Parquet reader or an Arrow Flight stream). It is kept separate from the
// core vecexpr package so that programs which only need in-process
// evaluation are not forced to pull in Arrow's dependency closure.
package arrowio

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// RealColumnFromArrow extracts a []float64 from an Arrow float64 array,
// returning an error if col is of some other type. Null slots are read as
// their zero value; callers that care about nullability should check
// col.IsNull directly.
func RealColumnFromArrow(col arrow.Array) ([]float64, error) {
	f64, ok := col.(*array.Float64)
	if !ok {
		return nil, fmt.Errorf("arrowio: expected float64 array, got %s", col.DataType())
	}

	out := make([]float64, f64.Len())
	copy(out, f64.Float64Values())

	return out, nil
}

// StringColumnFromArrow extracts a []string from an Arrow string array.
func StringColumnFromArrow(col arrow.Array) ([]string, error) {
	s, ok := col.(*array.String)
	if !ok {
		return nil, fmt.Errorf("arrowio: expected string array, got %s", col.DataType())
	}

	out := make([]string, s.Len())
	for i := 0; i < s.Len(); i++ {
		out[i] = s.Value(i)
	}

	return out, nil
}

// Float64ColumnToArrow builds an Arrow float64 array from a plain slice,
// using a fresh Go allocator. Callers must call Release on the result when
// done with it.
func Float64ColumnToArrow(data []float64) arrow.Array {
	mem := memory.NewGoAllocator()
	b := array.NewFloat64Builder(mem)
	defer b.Release()

	b.AppendValues(data, nil)

	return b.NewArray()
}

// BoolColumnToArrow builds an Arrow boolean array from a plain slice, using
// a fresh Go allocator. Callers must call Release on the result when done
// with it.
func BoolColumnToArrow(data []bool) arrow.Array {
	mem := memory.NewGoAllocator()
	b := array.NewBooleanBuilder(mem)
	defer b.Release()

	b.AppendValues(data, nil)

	return b.NewArray()
}

// StringColumnToArrow builds an Arrow string array from a plain slice, using
// a fresh Go allocator. Callers must call Release on the result when done
// with it.
func StringColumnToArrow(data []string) arrow.Array {
	mem := memory.NewGoAllocator()
	b := array.NewStringBuilder(mem)
	defer b.Release()

	b.AppendValues(data, nil)

	return b.NewArray()
}
