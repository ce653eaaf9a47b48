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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheReturnsSameProgramForRepeatedText(t *testing.T) {
	cols := testResolver()
	cache := NewCache()

	p1, err := cache.CompileReal("a + b * c", "", cols)
	require.Nil(t, err)

	p2, err := cache.CompileReal("a + b * c", "", cols)
	require.Nil(t, err)

	assert.Same(t, p1, p2)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheDistinguishesResolverKeys(t *testing.T) {
	cols := testResolver()
	cache := NewCache()

	_, err := cache.CompileReal("a + b", "tenant-1", cols)
	require.Nil(t, err)

	_, err = cache.CompileReal("a + b", "tenant-2", cols)
	require.Nil(t, err)

	assert.Equal(t, 2, cache.Len())
}

func TestCacheRejectsWrongSort(t *testing.T) {
	cols := testResolver()
	cache := NewCache()

	_, err := cache.CompileBool("a + b", "", cols)
	require.NotNil(t, err)
	assert.Equal(t, ErrSortMismatch, err.Kind)
}
