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

// Each property is checked this many times.
const SampleSize = 999

func TestXorshiftDeterministic(t *testing.T) {
	t.Parallel()
	a := NewRandomXorshift(1234)
	b := NewRandomXorshift(1234)

	for i := 0; i < SampleSize; i++ {
		require.Equal(t, a.Generate(), b.Generate(), "streams diverged at %d", i)
	}
}

func TestXorshiftSeedsDiffer(t *testing.T) {
	t.Parallel()
	a := NewRandomXorshift(1)
	b := NewRandomXorshift(2)

	same := 0
	for i := 0; i < SampleSize; i++ {
		if a.Generate() == b.Generate() {
			same++
		}
	}
	assert.True(t, same < 3, "%d of %d values equal across seeds", same, SampleSize)
}

func TestXorshiftZeroSeed(t *testing.T) {
	t.Parallel()
	source := NewRandomXorshift(0)
	nonZeroCount := 0

	for i := 0; i < SampleSize; i++ {
		if source.Generate() != 0 {
			nonZeroCount++
		}
	}

	require.True(t, nonZeroCount > 0, "Source generated only zeros")
}

func TestXorshiftZeroState(t *testing.T) {
	t.Parallel()
	source := NewRandomXorshiftState([4]uint32{})
	assert.NotEqual(t, [4]uint32{}, source.State())
	assert.NotEqual(t, uint32(0), source.Generate())
}

func TestXorshiftCopyForks(t *testing.T) {
	t.Parallel()
	a := NewRandomXorshift(99)
	a.Generate()
	b := a

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestXorshiftStateRoundTrip(t *testing.T) {
	t.Parallel()
	a := NewRandomXorshift(5)
	a.Generate()
	b := NewRandomXorshiftState(a.State())

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestXorshiftLessThan(t *testing.T) {
	t.Parallel()
	source := NewRandomXorshift(7)
	var counts [6]int

	for i := 0; i < SampleSize*6; i++ {
		v := source.LessThan(6)
		require.True(t, v < 6, "LessThan(6) returned %d", v)
		counts[v]++
	}

	for v, count := range counts {
		assert.True(t, count > SampleSize/2, "value %d drawn only %d times", v, count)
	}
	assert.Equal(t, uint32(0), source.LessThan(1))
	assertUtilPanic(t, func() { source.LessThan(0) })
}

func assertUtilPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		err, _ := recover().(error)
		assert.True(t, Error.Has(err), "panic value %v is not a util error", err)
	}()
	fn()
	t.Error("expected a panic")
}

func TestXorshiftFloat64(t *testing.T) {
	t.Parallel()
	source := NewRandomXorshift(11)

	for i := 0; i < SampleSize; i++ {
		v := source.Float64()
		require.True(t, v >= 0 && v < 1, "Float64 returned %v", v)
	}
}

func TestSeedFromKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, SeedFromKey("mountains"), SeedFromKey("mountains"))
	assert.NotEqual(t, SeedFromKey("mountains"), SeedFromKey("rivers"))
}

func TestXorshiftFromKey(t *testing.T) {
	t.Parallel()
	a := XorshiftFromKey("trees")
	b := XorshiftFromKey("trees")
	c := XorshiftFromKey("rocks")

	assert.Equal(t, a.State(), b.State())
	assert.NotEqual(t, a.State(), c.State())
	assert.Equal(t, a.Generate(), b.Generate())
}

var blackholeUint32 uint32

func BenchmarkXorshift(b *testing.B) {
	source := NewRandomXorshift(2345)

	for i := 0; i < b.N; i++ {
		blackholeUint32 += source.Generate()
	}
}
