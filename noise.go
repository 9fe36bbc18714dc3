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

/*
Package noise generates deterministic, seed-reproducible pseudo-random scalar
fields over continuous 2D and 3D space, for procedural textures and point
distributions.

E.g.
	field := noise.NewFBM(noise.NewSuperSimplex2D(1, 1.0/64, 42), 6, 0.5, 2)
	v := field.Eval2(x, y)
returns six octaves of SuperSimplex noise, approximately in [-1, 1].

Fields

Every generator implements Field, which evaluates at 2, 3 or 4 coordinates.
Axes a generator does not use are ignored, and missing axes are treated as 0.
The concrete types also implement Noise, which derives amplitude-scaled,
frequency-scaled and reseeded copies. The tiling variants implement
TilingNoise: they repeat exactly every wavelength/frequency units along each
axis, and Transposed doubles the wavelength so fractal octaves keep a common
period.

Available fields are the classic lattice gradient noise (Classic2D, Classic3D),
the simplex family (Simplex2D, Simplex3D, SuperSimplex2D, SuperSimplex3D),
Worley cell noise (Cell2D, Cell3D), and the compositors FBM, TilingFBM and
DistortedNoise, which wrap any other field including each other.

Only the axis-aligned lattices tile: TilingClassic2D, TilingClassic3D,
TilingCell2D and TilingCell3D. The simplex family samples a skewed lattice
whose cells do not line up with the input axes at any integer period, so it
has no tiling variant.

Blue noise

DiskSampler2D produces Poisson-disk point sets with Bridson's algorithm. Unlike
the fields it keeps state between calls.

Concurrent Use

Fields are immutable values. Evaluating one field from many goroutines is safe
without locking, and so is deriving new fields from it. A DiskSampler2D must
not be shared between goroutines; use one sampler per goroutine, or wrap it in
a LockedDiskSampler.

Contract violations, such as a non-positive frequency or wavelength, panic
with an error of class Error.
*/
package noise

import (
	"math"

	"github.com/zeebo/errs"

	"github.com/zach-klippenstein/gonoise/util"
)

// Error is the class of all errors raised by this package.
var Error = errs.Class("noise")

// Field is a scalar field that can be sampled in two, three or four
// dimensions.
type Field interface {
	Eval2(x, y float64) float64
	Eval3(x, y, z float64) float64
	Eval4(x, y, z, w float64) float64
}

// Noise is a Field that can derive modified copies of itself. N is the
// concrete type, so derived copies keep their static type.
type Noise[N any] interface {
	Field

	// AmplitudeScaled returns a copy whose output is multiplied by factor.
	AmplitudeScaled(factor float64) N

	// FrequencyScaled returns a copy whose input is multiplied by factor.
	FrequencyScaled(factor float64) N

	// Reseeded returns a copy with a decorrelated permutation table.
	Reseeded() N
}

// TilingNoise is Noise that repeats with a fixed period on every axis.
type TilingNoise[N any] interface {
	Noise[N]

	// Transposed returns a copy whose wavelength is multiplied by 2^octaves.
	Transposed(octaves int) N
}

// params holds what every lattice-based generator carries.
type params struct {
	amplitude float64
	frequency float64
	table     util.PermutationTable
}

func newParams(amplitude, frequency float64, seed uint32) params {
	checkFrequency(frequency)
	return params{
		amplitude: amplitude,
		frequency: frequency,
		table:     util.NewPermutationTable(seed),
	}
}

// Amplitude returns the output scale.
func (p params) Amplitude() float64 { return p.amplitude }

// Frequency returns the input scale.
func (p params) Frequency() float64 { return p.frequency }

// Table returns the permutation table used to hash lattice coordinates.
func (p params) Table() util.PermutationTable { return p.table }

func (p params) amplitudeScaled(factor float64) params {
	p.amplitude *= factor
	return p
}

func (p params) frequencyScaled(factor float64) params {
	checkFrequency(factor)
	p.frequency *= factor
	return p
}

// reseedSeed is the seed used to reshuffle a parent table. The entropy comes
// from the parent, so a constant is enough.
const reseedSeed = 0

func (p params) reseeded() params {
	p.table = p.table.Reseeded(reseedSeed)
	return p
}

func checkFrequency(f float64) {
	if !(f > 0) || math.IsInf(f, 0) {
		panic(Error.New("frequency must be positive and finite, got %v", f))
	}
}

func checkWavelength(w []int) {
	for axis, v := range w {
		if v <= 0 {
			panic(Error.New("wavelength on axis %d must be positive, got %d", axis, v))
		}
	}
}

func checkTranspose(octaves int) {
	if octaves < 0 || octaves > 24 {
		panic(Error.New("cannot transpose by %d octaves", octaves))
	}
}

// wrap reduces a lattice coordinate modulo w. A zero w disables wrapping.
func wrap(i, w int) int {
	if w == 0 {
		return i
	}
	i %= w
	if i < 0 {
		i += w
	}
	return i
}

// floor splits v into its integral bin and fractional offset in [0, 1).
func floor(v float64) (int, float64) {
	f := math.Floor(v)
	return int(f), v - f
}
