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

// PermutationTableSize is the number of entries in a PermutationTable.
const PermutationTableSize = 256

// PermutationTable is a seeded permutation of the bytes 0..255, used to hash
// integer lattice coordinates. The zero value is the identity permutation.
//
// Tables are values; methods never modify the receiver.
type PermutationTable struct {
	values [PermutationTableSize]uint8
}

// NewPermutationTable shuffles the identity permutation with a xorshift
// stream seeded from seed.
func NewPermutationTable(seed uint32) PermutationTable {
	var table PermutationTable
	for i := range table.values {
		table.values[i] = uint8(i)
	}
	return table.shuffled(seed)
}

// Reseeded returns a copy of the table reshuffled with seed. The result is
// derived from the receiver rather than from the identity, so tables reseeded
// from different parents with the same seed still differ.
func (t PermutationTable) Reseeded(seed uint32) PermutationTable {
	return t.shuffled(seed)
}

// t is a copy, so shuffling it in place leaves the caller's table alone.
func (t PermutationTable) shuffled(seed uint32) PermutationTable {
	rng := NewRandomXorshift(seed)
	for i := PermutationTableSize - 1; i > 0; i-- {
		j := rng.LessThan(uint32(i + 1))
		t.values[i], t.values[j] = t.values[j], t.values[i]
	}
	return t
}

// At returns the i'th entry of the table, i masked to 8 bits.
func (t *PermutationTable) At(i int) uint8 {
	return t.values[i&255]
}

// Values returns a copy of the table entries.
func (t *PermutationTable) Values() [PermutationTableSize]uint8 {
	return t.values
}

// Hash2 hashes a 2D lattice coordinate to a byte.
func (t *PermutationTable) Hash2(x, y int) uint8 {
	return t.values[t.values[x&255]^uint8(y&255)]
}

// Hash3 hashes a 3D lattice coordinate to a byte.
func (t *PermutationTable) Hash3(x, y, z int) uint8 {
	return t.values[t.Hash2(x, y)^uint8(z&255)]
}
