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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistortedZeroStrengthIsSource(t *testing.T) {
	t.Parallel()
	source := NewSuperSimplex3D(1, 0.3, 1)
	distorted := NewDistorted(source, NewCell3D(1, 1, 2), 0)
	next := coordinates(40, 100)

	for i := 0; i < SampleSize; i++ {
		x, y, z := next(), next(), next()
		assert.InDelta(t, source.Eval2(x, y), distorted.Eval2(x, y), 1e-12)
		assert.InDelta(t, source.Eval3(x, y, z), distorted.Eval3(x, y, z), 1e-12)
		assert.InDelta(t, source.Eval4(x, y, z, 1), distorted.Eval4(x, y, z, 1), 1e-12)
	}
}

func TestDistortedOffsets(t *testing.T) {
	t.Parallel()
	source := NewClassic2D(1, 0.5, 1)
	displacement := NewSimplex2D(1, 0.25, 2)
	distorted := NewDistorted(source, displacement, 3)
	next := coordinates(41, 100)

	differs := 0
	for i := 0; i < SampleSize; i++ {
		x, y := next(), next()
		want := source.Eval2(x+3*displacement.Eval2(x, y), y+3*displacement.Eval2(y, x))
		assert.InDelta(t, want, distorted.Eval2(x, y), 1e-12)
		if distorted.Eval2(x, y) != source.Eval2(x, y) {
			differs++
		}
	}
	assert.True(t, differs > SampleSize/2)
}

func TestDistortedTransforms(t *testing.T) {
	t.Parallel()
	distorted := NewSelfDistorted(NewSimplex3D(1, 1, 5), 0.75)
	next := coordinates(42, 20)

	scaled := distorted.FrequencyScaled(2)
	assert.Equal(t, 0.375, scaled.Strength())
	assert.Equal(t, 0.75, distorted.Strength())

	for i := 0; i < SampleSize; i++ {
		x, y, z := next(), next(), next()
		v := distorted.Eval3(x, y, z)
		assert.InDelta(t, -v, distorted.AmplitudeScaled(-1).Eval3(x, y, z), 1e-9)
		assert.InDelta(t, distorted.Eval3(2*x, 2*y, 2*z), scaled.Eval3(x, y, z), 1e-9)
	}

	reseeded := distorted.Reseeded()
	assert.NotEqual(t, distorted.Eval3(0.3, 0.7, 0.1), reseeded.Eval3(0.3, 0.7, 0.1))
}

func BenchmarkDistorted(b *testing.B) {
	benchmarkField(b, NewSelfDistorted(NewSuperSimplex3D(1, 0.01, 0), 20))
}
