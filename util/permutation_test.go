/*
Copyright 2014 Zachary Klippenstein

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

   http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPermutation(t *testing.T, table PermutationTable) {
	t.Helper()
	var seen [PermutationTableSize]bool
	for _, v := range table.Values() {
		require.False(t, seen[v], "value %d appears twice", v)
		seen[v] = true
	}
}

func TestPermutationTableIsPermutation(t *testing.T) {
	t.Parallel()
	for seed := uint32(0); seed < 16; seed++ {
		assertPermutation(t, NewPermutationTable(seed))
	}
}

func TestPermutationTableDeterministic(t *testing.T) {
	t.Parallel()
	assert.Equal(t, NewPermutationTable(42), NewPermutationTable(42))
	assert.NotEqual(t, NewPermutationTable(42), NewPermutationTable(43))
}

func TestPermutationTableShuffles(t *testing.T) {
	t.Parallel()
	var identity PermutationTable
	for i := range identity.values {
		identity.values[i] = uint8(i)
	}
	assert.NotEqual(t, identity, NewPermutationTable(0))
}

func TestPermutationTableReseeded(t *testing.T) {
	t.Parallel()
	parent := NewPermutationTable(1)
	before := parent.Values()
	child := parent.Reseeded(0)

	assert.Equal(t, before, parent.Values(), "Reseeded modified its receiver")
	assert.NotEqual(t, parent, child)
	assertPermutation(t, child)

	// derived from the parent, not from the identity.
	assert.NotEqual(t, NewPermutationTable(2).Reseeded(0), child)
	assert.Equal(t, parent.Reseeded(0), child)
}

func TestPermutationTableHash(t *testing.T) {
	t.Parallel()
	table := NewPermutationTable(3)

	for x := -300; x <= 300; x += 7 {
		for y := -300; y <= 300; y += 11 {
			h := table.Hash2(x, y)
			assert.Equal(t, h, table.Hash2(x, y))
			assert.Equal(t, h, table.Hash2(x+256, y-512), "hash must wrap every 256 cells")
			assert.Equal(t, table.At(int(table.At(x))^(y&255)), h)
			assert.Equal(t, table.At(int(h)^(5&255)), table.Hash3(x, y, 5))
		}
	}
}

func TestPermutationTableHashSpread(t *testing.T) {
	t.Parallel()
	table := NewPermutationTable(4)
	var seen [256]bool
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			seen[table.Hash2(x, y)] = true
		}
	}
	count := 0
	for _, s := range seen {
		if s {
			count++
		}
	}
	assert.True(t, count > 200, "only %d distinct hashes", count)
}

var blackholeUint8 uint8

func BenchmarkHash3(b *testing.B) {
	table := NewPermutationTable(0)
	for i := 0; i < b.N; i++ {
		blackholeUint8 += table.Hash3(i, i>>8, i>>16)
	}
}
