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
	"fmt"

	"github.com/foresight-mining/vecexpr/internal/source"
)

// ErrorKind classifies the reason a ParseError was raised.
type ErrorKind uint8

const (
	// ErrLex indicates the lexer encountered a rune sequence matching none
	// of the token rules.
	ErrLex ErrorKind = iota
	// ErrSyntax indicates the token stream did not match the grammar.
	ErrSyntax
	// ErrUnknownVariable indicates a variable name has no binding in the
	// NameResolver supplied to Parse.
	ErrUnknownVariable
	// ErrSortMismatch indicates an operand or expression of the wrong sort
	// (e.g. a string variable used where a real number was expected, or a
	// boolean expression passed to ParseReal).
	ErrSortMismatch
)

// Span identifies a rune range within the expression text that was parsed,
// for use in diagnostics (e.g. highlighting the offending text in an editor).
type Span struct {
	Start int
	End   int
}

func fromInternal(s source.Span) Span {
	return Span{Start: s.Start(), End: s.End()}
}

// ParseError reports a single failure encountered while lexing or parsing an
// expression.
type ParseError struct {
	Kind Kind
	Span Span
	msg  string
}

// Kind is an alias retained for readability at call sites (ParseError.Kind).
type Kind = ErrorKind

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.Start, e.Span.End, e.msg)
}

func newError(kind ErrorKind, span source.Span, format string, args ...any) *ParseError {
	return &ParseError{
		Kind: kind,
		Span: fromInternal(span),
		msg:  fmt.Sprintf(format, args...),
	}
}
