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

// Program is a planned, linear three-address instruction sequence for
// evaluating a single expression. Instructions read from and write to a
// Registers pool sized according to NumReal/NumBool/NumStr.
type Program struct {
	Instrs  []Instr
	Result  ResultRef
	NumReal int
	NumBool int
	NumStr  int
}

// PlanReal plans a real-sorted expression into a linear instruction program.
func PlanReal(e RealExpr) *Program {
	b := &builder{}
	r := b.planReal(e)

	return &Program{
		Instrs:  b.instrs,
		Result:  ResultRef{Sort: SortReal, R: r},
		NumReal: b.numR,
		NumBool: b.numB,
		NumStr:  b.numS,
	}
}

// PlanBool plans a boolean-sorted expression into a linear instruction
// program.
func PlanBool(e BoolExpr) *Program {
	b := &builder{}
	r := b.planBool(e)

	return &Program{
		Instrs:  b.instrs,
		Result:  ResultRef{Sort: SortBool, B: r},
		NumReal: b.numR,
		NumBool: b.numB,
		NumStr:  b.numS,
	}
}

// Plan plans whichever sort of expression this ParsedExpr actually holds.
func (p *ParsedExpr) Plan() *Program {
	if p.Sort == SortReal {
		return PlanReal(p.Real)
	}

	return PlanBool(p.Bool)
}
