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
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/minio/highwayhash"
)

// Fixed highwayhash key. Changing it changes every keyed stream.
var streamKey = []byte("gonoise/xorshift-state-key/v1...")

// SeedFromKey derives a 32-bit seed from a name, so presets can refer to
// seeds like "mountains" instead of numbers.
func SeedFromKey(key string) uint32 {
	h := xxhash.Sum64String(key)
	return uint32(h) ^ uint32(h>>32)
}

// XorshiftFromKey derives a full 128-bit xorshift state from a name.
func XorshiftFromKey(key string) RandomXorshift {
	sum := highwayhash.Sum128([]byte(key), streamKey)
	var state [4]uint32
	for i := range state {
		state[i] = binary.LittleEndian.Uint32(sum[i*4:])
	}
	return NewRandomXorshiftState(state)
}
