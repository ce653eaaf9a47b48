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
package source

import "fmt"

// File wraps the raw text being parsed so that spans can be turned into
// human-readable line/column positions for error reporting.
type File struct {
	name string
	text []rune
}

// NewFile constructs a source file from its name and raw text.
func NewFile(name string, text string) *File {
	return &File{name, []rune(text)}
}

// Name returns the name under which this source text is known (often just
// "<expr>" for ad-hoc expressions).
func (p *File) Name() string {
	return p.name
}

// Text returns the original text.
func (p *File) Text() string {
	return string(p.text)
}

// Slice returns the substring of the original text covered by span.
func (p *File) Slice(span Span) string {
	return string(p.text[span.Start():span.End()])
}

// SyntaxError constructs a syntax error anchored at span within this file.
func (p *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{p, span, msg}
}

// Line identifies the 1-indexed line and column enclosing a given rune
// offset.
func (p *File) Line(offset int) (line int, column int) {
	line = 1
	column = 1

	for i, r := range p.text {
		if i >= offset {
			break
		}

		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}

	return line, column
}

// SyntaxError captures a parse or lex failure anchored at a span within a
// source file, along with a human-readable message.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// Span returns the span at which this error occurred.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the underlying error message (without position
// information).
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface, rendering "line:column: message".
func (p *SyntaxError) Error() string {
	line, column := p.srcfile.Line(p.span.Start())
	return fmt.Sprintf("%d:%d: %s", line, column, p.msg)
}
