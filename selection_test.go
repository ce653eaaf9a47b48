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

func TestSelectionAndApply(t *testing.T) {
	cols := NewColumnSet()
	cols.AddReal("a", []float64{1, 2, 3, 4, 5})

	expr, err := ParseBool("a > 2", cols)
	require.Nil(t, err)

	mask := PlanBool(expr).EvalBool(cols, NewRegisters(0), cols.Len())
	bm := Selection(mask)

	assert.EqualValues(t, 3, bm.GetCardinality())

	got := ApplySelection(cols.RealColumn(0), bm)
	assert.Equal(t, []float64{3, 4, 5}, got)
}
