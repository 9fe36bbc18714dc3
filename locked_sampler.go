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

package noise

import "sync"

// LockedDiskSampler serialises access to a DiskSampler2D, for callers that
// must share one sampler between goroutines. Results still depend on the
// order in which goroutines acquire the lock.
type LockedDiskSampler struct {
	lk      sync.Mutex
	sampler *DiskSampler2D
}

// NewLockedDiskSampler wraps sampler. The sampler must not be used directly
// afterwards.
func NewLockedDiskSampler(sampler *DiskSampler2D) *LockedDiskSampler {
	return &LockedDiskSampler{sampler: sampler}
}

func (s *LockedDiskSampler) Generate(radius, width, height float64, k int) []Point {
	s.lk.Lock()
	defer s.lk.Unlock()
	return s.sampler.Generate(radius, width, height, k)
}

func (s *LockedDiskSampler) GenerateFrom(radius, width, height float64, k int, seed Point) []Point {
	s.lk.Lock()
	defer s.lk.Unlock()
	return s.sampler.GenerateFrom(radius, width, height, k, seed)
}
