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
	"strconv"

	"github.com/foresight-mining/vecexpr/internal/lex"
	"github.com/foresight-mining/vecexpr/internal/source"
)

// Sort identifies which of the two value domains an expression produces.
type Sort uint8

// The two expression sorts.
const (
	SortReal Sort = iota
	SortBool
)

// String renders the sort name, used in diagnostics.
func (s Sort) String() string {
	if s == SortReal {
		return "real"
	}

	return "bool"
}

// ParsedExpr is the result of parsing expression text: exactly one of Real
// or Bool is populated, according to Sort.
type ParsedExpr struct {
	Sort Sort
	Real RealExpr
	Bool BoolExpr
}

type parser struct {
	file     *source.File
	runes    []rune
	toks     []lex.Token
	pos      int
	resolver NameResolver
}

// Parse lexes and parses text, resolving variable references against
// resolver, and returns the resulting typed expression. The sort of the
// result (real or boolean) is determined by the text itself; use ParseReal
// or ParseBool to additionally require a specific sort.
func Parse(text string, resolver NameResolver) (*ParsedExpr, *ParseError) {
	runes := []rune(text)
	file := source.NewFile("<expr>", text)

	toks, err := tokenize(file, runes)
	if err != nil {
		return nil, err
	}

	p := &parser{file: file, runes: runes, toks: toks, resolver: resolver}

	boolExpr, berr := p.tryOr()
	if berr == nil && p.atEnd() {
		return &ParsedExpr{Sort: SortBool, Bool: boolExpr}, nil
	}

	p.pos = 0

	realExpr, rerr := p.parseAdd()
	if rerr != nil {
		if berr != nil {
			return nil, berr
		}

		return nil, rerr
	}

	if !p.atEnd() {
		return nil, p.errorAtCurrent("unexpected trailing input")
	}

	return &ParsedExpr{Sort: SortReal, Real: realExpr}, nil
}

// ParseReal parses text as a real-valued expression, failing if it is
// boolean-sorted.
func ParseReal(text string, resolver NameResolver) (RealExpr, *ParseError) {
	expr, err := Parse(text, resolver)
	if err != nil {
		return nil, err
	}

	if expr.Sort != SortReal {
		return nil, &ParseError{Kind: ErrSortMismatch, msg: "expression is boolean, expected real"}
	}

	return expr.Real, nil
}

// ParseBool parses text as a boolean-valued expression, failing if it is
// real-sorted.
func ParseBool(text string, resolver NameResolver) (BoolExpr, *ParseError) {
	expr, err := Parse(text, resolver)
	if err != nil {
		return nil, err
	}

	if expr.Sort != SortBool {
		return nil, &ParseError{Kind: ErrSortMismatch, msg: "expression is real, expected boolean"}
	}

	return expr.Bool, nil
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) peekKind() (uint, bool) {
	if p.atEnd() {
		return 0, false
	}

	return p.toks[p.pos].Kind, true
}

func (p *parser) text(tok lex.Token) string {
	return string(p.runes[tok.Span.Start():tok.Span.End()])
}

func (p *parser) errorAtCurrent(format string, args ...any) *ParseError {
	var span source.Span
	if p.atEnd() {
		n := len(p.runes)
		span = source.NewSpan(n, n)
	} else {
		span = p.toks[p.pos].Span
	}

	return newError(ErrSyntax, span, format, args...)
}

func (p *parser) expect(kind uint, what string) (lex.Token, *ParseError) {
	k, ok := p.peekKind()
	if !ok || k != kind {
		return lex.Token{}, p.errorAtCurrent("expected %s", what)
	}

	tok := p.toks[p.pos]
	p.pos++

	return tok, nil
}

// tryOr attempts to parse the full boolean-or grammar starting at the
// current position. On failure the parser position is left indeterminate;
// callers that need to backtrack must save/restore p.pos themselves.
func (p *parser) tryOr() (BoolExpr, *ParseError) {
	return p.parseOr()
}

func (p *parser) parseOr() (BoolExpr, *ParseError) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for {
		if k, ok := p.peekKind(); !ok || k != tokOr {
			return lhs, nil
		}

		p.pos++

		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}

		lhs = BoolBinary{Op: OpOr, LHS: lhs, RHS: rhs}
	}
}

func (p *parser) parseAnd() (BoolExpr, *ParseError) {
	lhs, err := p.parseUnaryBool()
	if err != nil {
		return nil, err
	}

	for {
		if k, ok := p.peekKind(); !ok || k != tokAnd {
			return lhs, nil
		}

		p.pos++

		rhs, err := p.parseUnaryBool()
		if err != nil {
			return nil, err
		}

		lhs = BoolBinary{Op: OpAnd, LHS: lhs, RHS: rhs}
	}
}

func (p *parser) parseUnaryBool() (BoolExpr, *ParseError) {
	if k, ok := p.peekKind(); ok && k == tokNot {
		p.pos++

		x, err := p.parseUnaryBool()
		if err != nil {
			return nil, err
		}

		return BoolNot{X: x}, nil
	}

	if k, ok := p.peekKind(); ok && k == tokLParen {
		save := p.pos
		p.pos++

		inner, err := p.parseOr()
		if err == nil {
			if k2, ok2 := p.peekKind(); ok2 && k2 == tokRParen {
				p.pos++
				return inner, nil
			}
		}

		p.pos = save
	}

	return p.parseComparison()
}

func (p *parser) looksLikeStrOperand() bool {
	k, ok := p.peekKind()
	if !ok {
		return false
	}

	if k == tokString {
		return true
	}

	if k != tokIdent {
		return false
	}

	name := p.text(p.toks[p.pos])
	_, isReal := p.resolver.ResolveReal(name)
	_, isStr := p.resolver.ResolveStr(name)

	return isStr && !isReal
}

func (p *parser) parseComparison() (BoolExpr, *ParseError) {
	if p.looksLikeStrOperand() {
		lhs, err := p.parseStrOperand()
		if err != nil {
			return nil, err
		}

		k, ok := p.peekKind()
		if !ok || (k != tokEq && k != tokNeq) {
			return nil, p.errorAtCurrent("expected '==' or '!=' after string operand")
		}

		p.pos++

		rhs, err := p.parseStrOperand()
		if err != nil {
			return nil, err
		}

		op := StrCmpEqual
		if k == tokNeq {
			op = StrCmpNotEqual
		}

		return StrCompare{Op: op, LHS: lhs, RHS: rhs}, nil
	}

	lhs, err := p.parseAdd()
	if err != nil {
		return nil, err
	}

	k, ok := p.peekKind()
	if !ok {
		return nil, p.errorAtCurrent("expected comparison operator")
	}

	var op CompareOp

	switch k {
	case tokEq:
		op = CmpEqual
	case tokNeq:
		op = CmpNotEqual
	case tokLt:
		op = CmpLess
	case tokLe:
		op = CmpLessEqual
	case tokGt:
		op = CmpGreater
	case tokGe:
		op = CmpGreaterEqual
	default:
		return nil, p.errorAtCurrent("expected comparison operator")
	}

	p.pos++

	rhs, err := p.parseAdd()
	if err != nil {
		return nil, err
	}

	return RealCompare{Op: op, LHS: lhs, RHS: rhs}, nil
}

func (p *parser) parseStrOperand() (StrExpr, *ParseError) {
	k, ok := p.peekKind()
	if !ok {
		return nil, p.errorAtCurrent("expected string literal or variable")
	}

	switch k {
	case tokString:
		tok := p.toks[p.pos]
		p.pos++

		raw := p.text(tok)

		value, uerr := strconv.Unquote(raw)
		if uerr != nil {
			return nil, newError(ErrSyntax, tok.Span, "invalid string literal: %s", uerr)
		}

		return StrLiteral{Value: value}, nil
	case tokIdent:
		tok := p.toks[p.pos]
		name := p.text(tok)

		id, isStr := p.resolver.ResolveStr(name)
		if !isStr {
			return nil, newError(ErrUnknownVariable, tok.Span, "unknown string variable %q", name)
		}

		p.pos++

		return StrVar{Name: name, id: id}, nil
	default:
		return nil, p.errorAtCurrent("expected string literal or variable")
	}
}

func (p *parser) parseAdd() (RealExpr, *ParseError) {
	lhs, err := p.parseMul()
	if err != nil {
		return nil, err
	}

	for {
		k, ok := p.peekKind()
		if !ok || (k != tokPlus && k != tokMinus) {
			return lhs, nil
		}

		op := OpAdd
		if k == tokMinus {
			op = OpSub
		}

		p.pos++

		rhs, err := p.parseMul()
		if err != nil {
			return nil, err
		}

		lhs = RealBinary{Op: op, LHS: lhs, RHS: rhs}
	}
}

func (p *parser) parseMul() (RealExpr, *ParseError) {
	lhs, err := p.parseUnaryReal()
	if err != nil {
		return nil, err
	}

	for {
		k, ok := p.peekKind()
		if !ok || (k != tokStar && k != tokSlash) {
			return lhs, nil
		}

		op := OpMul
		if k == tokSlash {
			op = OpDiv
		}

		p.pos++

		rhs, err := p.parseUnaryReal()
		if err != nil {
			return nil, err
		}

		lhs = RealBinary{Op: op, LHS: lhs, RHS: rhs}
	}
}

// parseUnaryReal parses unary minus. Unary minus has lower precedence than
// `^`: -x^2 means -(x^2), not (-x)^2.
func (p *parser) parseUnaryReal() (RealExpr, *ParseError) {
	if k, ok := p.peekKind(); ok && k == tokMinus {
		p.pos++

		x, err := p.parsePow()
		if err != nil {
			return nil, err
		}

		return RealNeg{X: x}, nil
	}

	return p.parsePow()
}

// parsePow parses exponentiation, which is right-associative: a^b^c means
// a^(b^c).
func (p *parser) parsePow() (RealExpr, *ParseError) {
	lhs, err := p.parseRealPrimary()
	if err != nil {
		return nil, err
	}

	if k, ok := p.peekKind(); ok && k == tokCaret {
		p.pos++

		rhs, err := p.parsePow()
		if err != nil {
			return nil, err
		}

		return RealBinary{Op: OpPow, LHS: lhs, RHS: rhs}, nil
	}

	return lhs, nil
}

func (p *parser) parseRealPrimary() (RealExpr, *ParseError) {
	k, ok := p.peekKind()
	if !ok {
		return nil, p.errorAtCurrent("expected expression")
	}

	switch k {
	case tokNumber:
		tok := p.toks[p.pos]
		p.pos++

		v, perr := strconv.ParseFloat(p.text(tok), 64)
		if perr != nil {
			return nil, newError(ErrSyntax, tok.Span, "invalid number literal: %s", perr)
		}

		return RealLiteral{Value: v}, nil
	case tokIdent:
		tok := p.toks[p.pos]
		name := p.text(tok)

		id, isReal := p.resolver.ResolveReal(name)
		if !isReal {
			if _, isStr := p.resolver.ResolveStr(name); isStr {
				return nil, newError(ErrSortMismatch, tok.Span, "variable %q is string-valued, expected real", name)
			}

			return nil, newError(ErrUnknownVariable, tok.Span, "unknown real variable %q", name)
		}

		p.pos++

		return RealVar{Name: name, id: id}, nil
	case tokLParen:
		p.pos++

		inner, err := p.parseAdd()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}

		return inner, nil
	default:
		return nil, p.errorAtCurrent("expected number, variable or '('")
	}
}
