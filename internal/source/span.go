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

// Package source provides rune-offset source spans and syntax errors for the
// expression lexer and parser.
package source

import "fmt"

// Span represents a contiguous slice of the original expression text.
// Indices are rune offsets into the text as a []rune (the form the lexer
// scans), which equal byte offsets only for ASCII text.
type Span struct {
	// start is the first rune of this span in the original string.
	start int
	// end is one past the final rune of this span in the original string.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariant that
// start never exceeds end.
func NewSpan(start, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting rune offset of this span.
func (p Span) Start() int {
	return p.start
}

// End returns one past the last rune offset of this span.
func (p Span) End() int {
	return p.end
}

// Length returns the number of runes covered by this span.
func (p Span) Length() int {
	return p.end - p.start
}

// Union returns the smallest span enclosing both p and q.
func (p Span) Union(q Span) Span {
	start := p.start
	if q.start < start {
		start = q.start
	}

	end := p.end
	if q.end > end {
		end = q.end
	}

	return Span{start, end}
}

// String renders the span as "start:end", used in error messages.
func (p Span) String() string {
	return fmt.Sprintf("%d:%d", p.start, p.end)
}
