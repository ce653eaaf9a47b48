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
	"github.com/foresight-mining/vecexpr/internal/lex"
	"github.com/foresight-mining/vecexpr/internal/source"
)

// Token kinds produced by the expression lexer.
const (
	tokWhitespace uint = iota
	tokNumber
	tokIdent
	tokString
	tokLParen
	tokRParen
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokEq
	tokNeq
	tokLe
	tokGe
	tokLt
	tokGt
	tokAnd
	tokOr
	tokNot
)

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// identScanner matches a bare identifier: an alpha/underscore followed by
// zero or more alphanumeric/underscore runes.
func identScanner(items []rune) uint {
	if len(items) == 0 || !isAlpha(items[0]) {
		return 0
	}

	n := uint(1)
	for n < uint(len(items)) && (isAlpha(items[n]) || isDigit(items[n])) {
		n++
	}

	return n
}

// numberScanner matches an unsigned decimal literal with an optional
// fractional part and an optional exponent, e.g. 1, 3.14, 2e10, 1.5e-3.
func numberScanner(items []rune) uint {
	n := uint(0)

	for n < uint(len(items)) && isDigit(items[n]) {
		n++
	}

	if n == 0 {
		return 0
	}

	if n < uint(len(items)) && items[n] == '.' {
		m := n + 1
		start := m

		for m < uint(len(items)) && isDigit(items[m]) {
			m++
		}

		if m > start {
			n = m
		}
	}

	if n < uint(len(items)) && (items[n] == 'e' || items[n] == 'E') {
		m := n + 1
		if m < uint(len(items)) && (items[m] == '+' || items[m] == '-') {
			m++
		}

		start := m
		for m < uint(len(items)) && isDigit(items[m]) {
			m++
		}

		if m > start {
			n = m
		}
	}

	return n
}

// stringScanner matches a double-quoted string literal. There are no
// escapes: the body may contain neither a quote nor a backslash, so the
// first '"' or '\' rune after the opening quote either closes the literal
// or fails the match.
func stringScanner(items []rune) uint {
	if len(items) == 0 || items[0] != '"' {
		return 0
	}

	n := uint(1)
	for n < uint(len(items)) {
		switch items[n] {
		case '"':
			return n + 1
		case '\\':
			return 0
		}

		n++
	}

	return 0
}

func whitespaceScanner(items []rune) uint {
	n := uint(0)
	for n < uint(len(items)) {
		switch items[n] {
		case ' ', '\t', '\n', '\r':
			n++
		default:
			return n
		}
	}

	return n
}

var lexRules = []lex.Rule{
	lex.NewRule(whitespaceScanner, tokWhitespace),
	lex.NewRule(numberScanner, tokNumber),
	lex.NewRule(identScanner, tokIdent),
	lex.NewRule(stringScanner, tokString),
	lex.NewRule(lex.Str("&&"), tokAnd),
	lex.NewRule(lex.Str("||"), tokOr),
	lex.NewRule(lex.Str("=="), tokEq),
	lex.NewRule(lex.Str("!="), tokNeq),
	lex.NewRule(lex.Str("<="), tokLe),
	lex.NewRule(lex.Str(">="), tokGe),
	lex.NewRule(lex.Str("<"), tokLt),
	lex.NewRule(lex.Str(">"), tokGt),
	lex.NewRule(lex.Str("!"), tokNot),
	lex.NewRule(lex.Str("("), tokLParen),
	lex.NewRule(lex.Str(")"), tokRParen),
	lex.NewRule(lex.Str("+"), tokPlus),
	lex.NewRule(lex.Str("-"), tokMinus),
	lex.NewRule(lex.Str("*"), tokStar),
	lex.NewRule(lex.Str("/"), tokSlash),
	lex.NewRule(lex.Str("^"), tokCaret),
}

// tokenize runs the expression lexer over text, discarding whitespace
// tokens. It reports a ParseError if a rune sequence matches no rule.
func tokenize(file *source.File, text []rune) ([]lex.Token, *ParseError) {
	lexer := lex.NewLexer(text, lexRules...)
	all := lexer.Collect()

	if pos := lexer.UnmatchedAt(); pos >= 0 {
		span := source.NewSpan(pos, pos+1)
		return nil, newError(ErrLex, span, "unrecognised character %q", string(text[pos]))
	}

	tokens := make([]lex.Token, 0, len(all))

	for _, t := range all {
		if t.Kind != tokWhitespace {
			tokens = append(tokens, t)
		}
	}

	return tokens, nil
}
