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

import "math"

// Default state words from Marsaglia's xorshift paper. Only w is replaced by
// the seed, so a zero seed still produces a usable stream.
const (
	defaultX = 123456789
	defaultY = 362436069
	defaultZ = 521288629
	defaultW = 88675123
)

// RandomXorshift is a 128-bit xorshift generator (shift triad 11/8/19) from
// http://www.jstatsoft.org/v08/i14/paper.
//
// It is a plain value: copying it forks the stream. It is not safe for
// concurrent use.
type RandomXorshift struct {
	x, y, z, w uint32
}

// NewRandomXorshift returns a generator seeded with seed. Two generators
// built from the same seed produce identical sequences.
func NewRandomXorshift(seed uint32) RandomXorshift {
	return RandomXorshift{
		x: defaultX,
		y: defaultY,
		z: defaultZ,
		w: defaultW ^ seed,
	}
}

// NewRandomXorshiftState returns a generator with the exact state words.
func NewRandomXorshiftState(state [4]uint32) RandomXorshift {
	// an all-zero state only generates zeros.
	if state == [4]uint32{} {
		return NewRandomXorshift(0)
	}
	return RandomXorshift{x: state[0], y: state[1], z: state[2], w: state[3]}
}

// State returns the four state words.
func (r *RandomXorshift) State() [4]uint32 {
	return [4]uint32{r.x, r.y, r.z, r.w}
}

// Generate advances the state and returns the next value.
func (r *RandomXorshift) Generate() uint32 {
	t := r.x ^ (r.x << 11)
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = r.w ^ (r.w >> 19) ^ (t ^ (t >> 8))
	return r.w
}

// LessThan returns a value uniformly distributed in [0, n). Values at or
// above the largest multiple of n are rejected so small remainders are not
// favoured. n must be positive.
func (r *RandomXorshift) LessThan(n uint32) uint32 {
	if n == 0 {
		panic(Error.New("xorshift: LessThan called with n == 0"))
	}
	limit := math.MaxUint32 - math.MaxUint32%n
	for {
		v := r.Generate()
		if v < limit {
			return v % n
		}
	}
}

// Float64 returns a value in [0, 1).
func (r *RandomXorshift) Float64() float64 {
	return float64(r.Generate()) / (1 << 32)
}
