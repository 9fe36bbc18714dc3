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

import "math"

// FBM is fractional Brownian motion: the sum of several octaves of a base
// field, each reseeded, with amplitude falling by persistence and frequency
// rising by lacunarity per octave.
type FBM[N Noise[N]] struct {
	octaves []N
}

// NewFBM builds an FBM from base. Octave amplitudes are normalised so that
// their sum equals the amplitude of base.
func NewFBM[N Noise[N]](base N, octaves int, persistence, lacunarity float64) FBM[N] {
	if err := ValidateFBM(octaves, persistence, lacunarity); err != nil {
		panic(err)
	}
	return FBM[N]{buildOctaves(base, octaves, persistence, func(n N, i int) N {
		return n.FrequencyScaled(math.Pow(lacunarity, float64(i)))
	})}
}

func buildOctaves[N Noise[N]](base N, octaves int, persistence float64, scale func(N, int) N) []N {
	norm := octaveNormalization(octaves, persistence)
	stack := make([]N, octaves, octaves)

	source := base
	for i := range stack {
		if i > 0 {
			source = source.Reseeded()
		}
		octave := source.AmplitudeScaled(norm * math.Pow(persistence, float64(i)))
		stack[i] = scale(octave, i)
	}
	return stack
}

// octaveNormalization returns the factor that brings the sum of octave
// amplitudes persistence^i back to 1.
func octaveNormalization(octaves int, persistence float64) float64 {
	if persistence == 0.5 {
		return math.Ldexp(1, octaves-1) / (math.Ldexp(1, octaves) - 1)
	}
	var sum float64
	for i := 0; i < octaves; i++ {
		sum += math.Pow(persistence, float64(i))
	}
	return 1 / sum
}

// ValidateFBM returns the error NewFBM would panic with for these
// parameters, or nil. The octave amplitudes persistence^i must have a
// non-zero finite sum, which rules out persistence -1 with an even octave
// count.
func ValidateFBM(octaves int, persistence, lacunarity float64) error {
	switch {
	case octaves < 1:
		return Error.New("octave count must be at least 1, got %d", octaves)
	case !(lacunarity > 0) || math.IsInf(lacunarity, 0):
		return Error.New("lacunarity must be positive and finite, got %v", lacunarity)
	}
	norm := octaveNormalization(octaves, persistence)
	if norm == 0 || math.IsInf(norm, 0) || math.IsNaN(norm) {
		return Error.New("persistence %v over %d octaves cannot be normalised", persistence, octaves)
	}
	return nil
}

// Octaves returns a copy of the octave stack, lowest frequency first.
func (f FBM[N]) Octaves() []N {
	return append([]N(nil), f.octaves...)
}

func (f FBM[N]) Eval2(x, y float64) float64 {
	var sum float64
	for i := range f.octaves {
		sum += f.octaves[i].Eval2(x, y)
	}
	return sum
}

func (f FBM[N]) Eval3(x, y, z float64) float64 {
	var sum float64
	for i := range f.octaves {
		sum += f.octaves[i].Eval3(x, y, z)
	}
	return sum
}

func (f FBM[N]) Eval4(x, y, z, w float64) float64 {
	var sum float64
	for i := range f.octaves {
		sum += f.octaves[i].Eval4(x, y, z, w)
	}
	return sum
}

// mapOctaves returns a new FBM with fn applied to every octave.
func (f FBM[N]) mapOctaves(fn func(N) N) FBM[N] {
	stack := make([]N, len(f.octaves), len(f.octaves))
	for i := range f.octaves {
		stack[i] = fn(f.octaves[i])
	}
	return FBM[N]{stack}
}

func (f FBM[N]) AmplitudeScaled(factor float64) FBM[N] {
	return f.mapOctaves(func(n N) N { return n.AmplitudeScaled(factor) })
}

func (f FBM[N]) FrequencyScaled(factor float64) FBM[N] {
	checkFrequency(factor)
	return f.mapOctaves(func(n N) N { return n.FrequencyScaled(factor) })
}

func (f FBM[N]) Reseeded() FBM[N] {
	return f.mapOctaves(func(n N) N { return n.Reseeded() })
}

// TilingFBM is an FBM over a tiling field. Each octave doubles both the
// frequency and the wavelength of the previous one, so every octave, and the
// sum, repeats with the period of the base field.
type TilingFBM[N TilingNoise[N]] struct {
	FBM[N]
}

// NewTilingFBM builds a TilingFBM from base. The lacunarity is fixed at 2.
func NewTilingFBM[N TilingNoise[N]](base N, octaves int, persistence float64) TilingFBM[N] {
	if err := ValidateFBM(octaves, persistence, 2); err != nil {
		panic(err)
	}
	return TilingFBM[N]{FBM[N]{buildOctaves(base, octaves, persistence, func(n N, i int) N {
		return n.FrequencyScaled(math.Ldexp(1, i)).Transposed(i)
	})}}
}

func (f TilingFBM[N]) AmplitudeScaled(factor float64) TilingFBM[N] {
	return TilingFBM[N]{f.FBM.AmplitudeScaled(factor)}
}

func (f TilingFBM[N]) FrequencyScaled(factor float64) TilingFBM[N] {
	return TilingFBM[N]{f.FBM.FrequencyScaled(factor)}
}

func (f TilingFBM[N]) Reseeded() TilingFBM[N] {
	return TilingFBM[N]{f.FBM.Reseeded()}
}

func (f TilingFBM[N]) Transposed(octaves int) TilingFBM[N] {
	return TilingFBM[N]{f.mapOctaves(func(n N) N { return n.Transposed(octaves) })}
}
