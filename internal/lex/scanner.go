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

// Package lex provides small scanner combinators for building hand-written
// lexers, and a generic lexer driver built on top of them.
package lex

import "cmp"

// Scanner attempts to match a prefix of items, returning the number of items
// consumed on success or zero on failure.
type Scanner[T any] func(items []T) uint

// And combines scanners such that the resulting scanner succeeds only when
// all of them match, returning the longest match observed.
func And[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)

		for _, scanner := range scanners {
			m := scanner(items)
			if m == 0 {
				return 0
			}

			n = max(n, m)
		}

		return n
	}
}

// Or tries each scanner in turn and returns the first successful match.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}

		return 0
	}
}

// Unit matches a fixed, literal sequence of items.
func Unit[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) < len(chars) {
			return 0
		}

		for i := range chars {
			if items[i] != chars[i] {
				return 0
			}
		}

		return uint(len(chars))
	}
}

// Str matches a literal rune string, e.g. a multi-character operator.
func Str(s string) Scanner[rune] {
	runes := []rune(s)
	return Unit(runes...)
}

// Within matches any single item in the inclusive range [lowest, highest].
func Within[T cmp.Ordered](lowest, highest T) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}

		return 0
	}
}

// Many matches zero or more repetitions of acceptor, greedily.
func Many[T any](acceptor Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)

		for index < uint(len(items)) {
			n := acceptor(items[index:])
			if n == 0 {
				break
			}

			index += n
		}

		return index
	}
}

// Eof matches only the empty input, i.e. end of stream.
func Eof[T any]() Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 {
			return 1
		}

		return 0
	}
}

// Sequence matches each scanner in turn, each consuming from where the
// previous one left off.
func Sequence[T comparable](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)

		for _, scanner := range scanners {
			if n == uint(len(items)) {
				return 0
			}

			m := scanner(items[n:])
			if m == 0 {
				return 0
			}

			n += m
		}

		return n
	}
}
