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

// freeList is a small LIFO of reusable register indices, one per sort. It
// mirrors the generic Stack used elsewhere in this family of tools, inlined
// here since it is small and used in exactly one place.
type freeList[T any] struct {
	items []T
}

func (s *freeList[T]) push(v T) {
	s.items = append(s.items, v)
}

func (s *freeList[T]) pop() (T, bool) {
	var zero T

	if len(s.items) == 0 {
		return zero, false
	}

	n := len(s.items) - 1
	v := s.items[n]
	s.items = s.items[:n]

	return v, true
}

// builder accumulates the instruction stream for a single Program while
// planning register reuse with three independent free lists, one per sort.
// This is a Sethi-Ullman style allocator: a node's children are planned
// first (recursively reusing freed registers as they go), their registers
// are then freed together, and only then is a destination register popped
// for the node itself - so a node whose result has the same sort as its
// operands can always reuse one of its own children's registers.
type builder struct {
	instrs []Instr

	freeR freeList[RReg]
	freeB freeList[BReg]
	freeS freeList[SReg]

	numR int
	numB int
	numS int
}

func (b *builder) allocR() RReg {
	if r, ok := b.freeR.pop(); ok {
		return r
	}

	r := RReg(b.numR)
	b.numR++

	return r
}

func (b *builder) allocB() BReg {
	if r, ok := b.freeB.pop(); ok {
		return r
	}

	r := BReg(b.numB)
	b.numB++

	return r
}

func (b *builder) allocS() SReg {
	if r, ok := b.freeS.pop(); ok {
		return r
	}

	r := SReg(b.numS)
	b.numS++

	return r
}

func (b *builder) emit(i Instr) {
	b.instrs = append(b.instrs, i)
}

func (b *builder) planReal(e RealExpr) RReg {
	switch n := e.(type) {
	case RealLiteral:
		dst := b.allocR()
		b.emit(LoadRealConst{Dst: dst, Value: n.Value})

		return dst
	case RealVar:
		dst := b.allocR()
		b.emit(LoadRealVar{Dst: dst, Var: n.id})

		return dst
	case RealNeg:
		x := b.planReal(n.X)
		b.freeR.push(x)

		dst := b.allocR()
		b.emit(RealUnOp{Dst: dst, X: x})

		return dst
	case RealBinary:
		lhs := b.planReal(n.LHS)
		rhs := b.planReal(n.RHS)
		b.freeR.push(lhs)
		b.freeR.push(rhs)

		dst := b.allocR()
		b.emit(RealBinInstr{Dst: dst, Op: n.Op, LHS: lhs, RHS: rhs})

		return dst
	default:
		panic("vecexpr: unknown RealExpr node")
	}
}

func (b *builder) planStr(e StrExpr) SReg {
	switch n := e.(type) {
	case StrLiteral:
		dst := b.allocS()
		b.emit(LoadStrConst{Dst: dst, Value: n.Value})

		return dst
	case StrVar:
		dst := b.allocS()
		b.emit(LoadStrVar{Dst: dst, Var: n.id})

		return dst
	default:
		panic("vecexpr: unknown StrExpr node")
	}
}

func (b *builder) planBool(e BoolExpr) BReg {
	switch n := e.(type) {
	case BoolNot:
		x := b.planBool(n.X)
		b.freeB.push(x)

		dst := b.allocB()
		b.emit(BoolUnOp{Dst: dst, X: x})

		return dst
	case BoolBinary:
		lhs := b.planBool(n.LHS)
		rhs := b.planBool(n.RHS)
		b.freeB.push(lhs)
		b.freeB.push(rhs)

		dst := b.allocB()
		b.emit(BoolBinInstr{Dst: dst, Op: n.Op, LHS: lhs, RHS: rhs})

		return dst
	case RealCompare:
		lhs := b.planReal(n.LHS)
		rhs := b.planReal(n.RHS)
		b.freeR.push(lhs)
		b.freeR.push(rhs)

		dst := b.allocB()
		b.emit(RealCmp{Dst: dst, Op: n.Op, LHS: lhs, RHS: rhs})

		return dst
	case StrCompare:
		lhs := b.planStr(n.LHS)
		rhs := b.planStr(n.RHS)
		b.freeS.push(lhs)
		b.freeS.push(rhs)

		dst := b.allocB()
		b.emit(StrCmp{Dst: dst, Op: n.Op, LHS: lhs, RHS: rhs})

		return dst
	default:
		panic("vecexpr: unknown BoolExpr node")
	}
}
