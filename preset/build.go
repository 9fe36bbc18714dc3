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

package preset

import (
	"github.com/zach-klippenstein/gonoise"
	"github.com/zach-klippenstein/gonoise/util"
)

// BuildField builds the field tree described by the field section.
func (p *Preset) BuildField() (noise.Boxed, error) {
	if p.Field == nil {
		return noise.Boxed{}, Error.New("preset has no field section")
	}
	return p.build(p.Field, "field")
}

func (p *Preset) build(spec *FieldSpec, path string) (noise.Boxed, error) {
	switch spec.Kind {
	case "fbm":
		return p.buildFBM(spec, path)
	case "distorted":
		return p.buildDistorted(spec, path)
	}

	amplitude := orDefault(spec.Amplitude, DefaultAmplitude)
	frequency := orDefault(spec.Frequency, DefaultFrequency)
	if !(frequency > 0) {
		return noise.Boxed{}, Error.New("%s: frequency must be positive, got %v", path, frequency)
	}
	seed := spec.Seed
	if spec.SeedKey != "" {
		seed = util.SeedFromKey(spec.SeedKey)
	}

	dims, tiles := lattice(spec.Kind)
	if dims == 0 {
		return noise.Boxed{}, Error.New("%s: unknown kind %q", path, spec.Kind)
	}
	if spec.Wavelength != nil {
		if !tiles {
			return noise.Boxed{}, Error.New("%s: %s does not tile", path, spec.Kind)
		}
		if len(spec.Wavelength) != dims {
			return noise.Boxed{}, Error.New("%s: %s needs %d wavelengths, got %d", path, spec.Kind, dims, len(spec.Wavelength))
		}
		for _, w := range spec.Wavelength {
			if w <= 0 {
				return noise.Boxed{}, Error.New("%s: wavelength must be positive, got %d", path, w)
			}
		}
		return buildTiling(spec.Kind, amplitude, frequency, seed, spec.Wavelength), nil
	}

	switch spec.Kind {
	case "classic2d":
		return noise.Box(noise.NewClassic2D(amplitude, frequency, seed)), nil
	case "classic3d":
		return noise.Box(noise.NewClassic3D(amplitude, frequency, seed)), nil
	case "simplex2d":
		return noise.Box(noise.NewSimplex2D(amplitude, frequency, seed)), nil
	case "simplex3d":
		return noise.Box(noise.NewSimplex3D(amplitude, frequency, seed)), nil
	case "supersimplex2d":
		return noise.Box(noise.NewSuperSimplex2D(amplitude, frequency, seed)), nil
	case "supersimplex3d":
		return noise.Box(noise.NewSuperSimplex3D(amplitude, frequency, seed)), nil
	case "cell2d":
		return noise.Box(noise.NewCell2D(amplitude, frequency, seed)), nil
	default:
		return noise.Box(noise.NewCell3D(amplitude, frequency, seed)), nil
	}
}

// lattice returns the dimension of a lattice kind and whether it can tile,
// or 0 for kinds that are not plain lattice fields.
func lattice(kind string) (dims int, tiles bool) {
	switch kind {
	case "classic2d", "cell2d":
		return 2, true
	case "classic3d", "cell3d":
		return 3, true
	case "simplex2d", "supersimplex2d":
		return 2, false
	case "simplex3d", "supersimplex3d":
		return 3, false
	}
	return 0, false
}

func buildTiling(kind string, amplitude, frequency float64, seed uint32, w []int) noise.Boxed {
	switch kind {
	case "classic2d":
		return noise.BoxTiling(noise.NewTilingClassic2D(amplitude, frequency, seed, [2]int{w[0], w[1]}))
	case "classic3d":
		return noise.BoxTiling(noise.NewTilingClassic3D(amplitude, frequency, seed, [3]int{w[0], w[1], w[2]}))
	case "cell2d":
		return noise.BoxTiling(noise.NewTilingCell2D(amplitude, frequency, seed, [2]int{w[0], w[1]}))
	default:
		return noise.BoxTiling(noise.NewTilingCell3D(amplitude, frequency, seed, [3]int{w[0], w[1], w[2]}))
	}
}

func (p *Preset) buildFBM(spec *FieldSpec, path string) (noise.Boxed, error) {
	if spec.Source == nil {
		return noise.Boxed{}, Error.New("%s: fbm needs a source", path)
	}
	source, err := p.build(spec.Source, path+".source")
	if err != nil {
		return noise.Boxed{}, err
	}

	octaves := spec.Octaves
	if octaves == 0 {
		octaves = DefaultOctaves
	}
	persistence := orDefault(spec.Persistence, DefaultPersistence)
	lacunarity := orDefault(spec.Lacunarity, DefaultLacunarity)
	if err := noise.ValidateFBM(octaves, persistence, lacunarity); err != nil {
		return noise.Boxed{}, Error.New("%s: %v", path, err)
	}

	if source.Tiling() {
		if lacunarity != 2 {
			return noise.Boxed{}, Error.New("%s: a tiling fbm needs lacunarity 2, got %v", path, lacunarity)
		}
		p.logf("%s: source tiles, doubling wavelength over %d octaves", path, octaves)
		return noise.BoxTiling(noise.NewTilingFBM(source, octaves, persistence)), nil
	}
	return noise.Box(noise.NewFBM(source, octaves, persistence, lacunarity)), nil
}

func (p *Preset) buildDistorted(spec *FieldSpec, path string) (noise.Boxed, error) {
	if spec.Source == nil {
		return noise.Boxed{}, Error.New("%s: distorted needs a source", path)
	}
	source, err := p.build(spec.Source, path+".source")
	if err != nil {
		return noise.Boxed{}, err
	}
	if spec.Displacement == nil {
		p.logf("%s: no displacement, distorting source by itself", path)
		return noise.Box(noise.NewSelfDistorted(source, spec.Strength)), nil
	}
	displacement, err := p.build(spec.Displacement, path+".displacement")
	if err != nil {
		return noise.Boxed{}, err
	}
	return noise.Box(noise.NewDistorted(source, displacement, spec.Strength)), nil
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
