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
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Cache memoizes the parse-and-plan pipeline, keyed by expression text plus
// a caller-supplied resolver identity. It exists because the same query
// text (e.g. a dashboard filter or a rule-engine predicate) is typically
// compiled far more often than it is edited, and replanning identical text
// repeatedly wastes the register allocator's work for no benefit.
//
// Entries are bucketed by the xxhash of their key, following the same
// hash-bucket-then-scan shape used elsewhere in this tool family for
// deduplicating interned values.
type Cache struct {
	mu      sync.RWMutex
	buckets map[uint64][]cacheEntry
}

type cacheEntry struct {
	resolverKey string
	text        string
	program     *Program
}

// NewCache constructs an empty program cache.
func NewCache() *Cache {
	return &Cache{buckets: make(map[uint64][]cacheEntry)}
}

// CompileReal returns the planned Program for text, compiling and caching it
// on first use. resolverKey distinguishes name-resolution contexts that
// might bind the same text to different columns (e.g. per-tenant schemas);
// callers with a single global resolver can pass "".
func (c *Cache) CompileReal(text, resolverKey string, resolver NameResolver) (*Program, *ParseError) {
	return c.compile(text, resolverKey, resolver, SortReal)
}

// CompileBool is the boolean analogue of CompileReal.
func (c *Cache) CompileBool(text, resolverKey string, resolver NameResolver) (*Program, *ParseError) {
	return c.compile(text, resolverKey, resolver, SortBool)
}

func (c *Cache) compile(text, resolverKey string, resolver NameResolver, want Sort) (*Program, *ParseError) {
	h := xxhash.Sum64String(resolverKey + "\x00" + text)

	if prog, ok := c.lookup(h, resolverKey, text); ok {
		if prog.Result.Sort != want {
			return nil, &ParseError{Kind: ErrSortMismatch, msg: "cached expression sort does not match request"}
		}

		return prog, nil
	}

	parsed, err := Parse(text, resolver)
	if err != nil {
		return nil, err
	}

	if parsed.Sort != want {
		return nil, &ParseError{Kind: ErrSortMismatch, msg: "expression sort does not match request"}
	}

	prog := parsed.Plan()
	c.insert(h, resolverKey, text, prog)

	return prog, nil
}

func (c *Cache) lookup(h uint64, resolverKey, text string) (*Program, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.buckets[h] {
		if e.resolverKey == resolverKey && e.text == text {
			return e.program, true
		}
	}

	return nil, false
}

func (c *Cache) insert(h uint64, resolverKey, text string, prog *Program) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.buckets[h] {
		if e.resolverKey == resolverKey && e.text == text {
			return
		}
	}

	c.buckets[h] = append(c.buckets[h], cacheEntry{resolverKey, text, prog})
}

// Len returns the number of distinct (resolverKey, text) pairs currently
// cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, bucket := range c.buckets {
		n += len(bucket)
	}

	return n
}
