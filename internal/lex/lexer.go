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
package lex

import "github.com/foresight-mining/vecexpr/internal/source"

// Token associates a tag with a given span of runes in the input.
type Token struct {
	Kind uint
	Span source.Span
}

// Rule pairs a scanner with the tag it produces when it matches.
type Rule struct {
	scanner Scanner[rune]
	tag     uint
}

// NewRule constructs a new lexing rule mapping matching runes to tag.
func NewRule(scanner Scanner[rune], tag uint) Rule {
	return Rule{scanner, tag}
}

// Lexer tokenises a rune stream according to an ordered list of rules; the
// first rule to match at a given position wins (maximal-munch is the
// caller's responsibility via rule ordering).
type Lexer struct {
	items  []rune
	index  int
	rules  []Rule
	buffer []Token
}

// NewLexer constructs a lexer over input using the given rules, tried in
// order at each position.
func NewLexer(input []rune, rules ...Rule) *Lexer {
	return &Lexer{input, 0, rules, nil}
}

// Index returns the current offset into the input.
func (p *Lexer) Index() uint {
	return uint(p.index)
}

// HasNext reports whether any token remains to be consumed.
func (p *Lexer) HasNext() bool {
	p.scan()
	return len(p.buffer) > 0
}

// Next returns the next token and advances the lexer past it.
func (p *Lexer) Next() Token {
	next := p.buffer[0]
	p.buffer = p.buffer[1:]

	if p.index == len(p.items) {
		p.index++
	} else {
		p.index = next.Span.End()
	}

	return next
}

// Collect tokenises the entire remaining input.
func (p *Lexer) Collect() []Token {
	var tokens []Token

	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}

	return tokens
}

// UnmatchedAt reports the rune offset of the first unrecognised rune, or -1
// if the entire input was matched by Collect.
func (p *Lexer) UnmatchedAt() int {
	if p.index < len(p.items) {
		return p.index
	}

	return -1
}

func (p *Lexer) scan() {
	if len(p.buffer) != 0 || p.index > len(p.items) {
		return
	}

	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			span := source.NewSpan(p.index, end)
			p.buffer = append(p.buffer, Token{r.tag, span})

			return
		}
	}
}
