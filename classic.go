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

import "github.com/zach-klippenstein/gonoise/util"

const (
	classic2DNorm = 1.0
	classic3DNorm = 0.982
)

// Classic2D is Perlin's lattice gradient noise in two dimensions.
type Classic2D struct {
	params
}

// NewClassic2D returns 2D lattice gradient noise.
func NewClassic2D(amplitude, frequency float64, seed uint32) Classic2D {
	return Classic2D{newParams(amplitude, frequency, seed)}
}

func (n Classic2D) Eval2(x, y float64) float64 {
	return n.amplitude * classic2D(&n.table, 0, 0, x*n.frequency, y*n.frequency)
}

func (n Classic2D) Eval3(x, y, _ float64) float64    { return n.Eval2(x, y) }
func (n Classic2D) Eval4(x, y, _, _ float64) float64 { return n.Eval2(x, y) }

func (n Classic2D) AmplitudeScaled(factor float64) Classic2D {
	return Classic2D{n.amplitudeScaled(factor)}
}

func (n Classic2D) FrequencyScaled(factor float64) Classic2D {
	return Classic2D{n.frequencyScaled(factor)}
}

func (n Classic2D) Reseeded() Classic2D {
	return Classic2D{n.reseeded()}
}

// TilingClassic2D is Classic2D repeating every wavelength lattice cells.
type TilingClassic2D struct {
	params
	wavelength [2]int
}

// NewTilingClassic2D returns 2D lattice gradient noise with period
// wavelength[i]/frequency along axis i.
func NewTilingClassic2D(amplitude, frequency float64, seed uint32, wavelength [2]int) TilingClassic2D {
	checkWavelength(wavelength[:])
	return TilingClassic2D{newParams(amplitude, frequency, seed), wavelength}
}

// Wavelength returns the period in lattice cells.
func (n TilingClassic2D) Wavelength() [2]int { return n.wavelength }

func (n TilingClassic2D) Eval2(x, y float64) float64 {
	return n.amplitude * classic2D(&n.table, n.wavelength[0], n.wavelength[1], x*n.frequency, y*n.frequency)
}

func (n TilingClassic2D) Eval3(x, y, _ float64) float64    { return n.Eval2(x, y) }
func (n TilingClassic2D) Eval4(x, y, _, _ float64) float64 { return n.Eval2(x, y) }

func (n TilingClassic2D) AmplitudeScaled(factor float64) TilingClassic2D {
	return TilingClassic2D{n.amplitudeScaled(factor), n.wavelength}
}

func (n TilingClassic2D) FrequencyScaled(factor float64) TilingClassic2D {
	return TilingClassic2D{n.frequencyScaled(factor), n.wavelength}
}

func (n TilingClassic2D) Reseeded() TilingClassic2D {
	return TilingClassic2D{n.reseeded(), n.wavelength}
}

func (n TilingClassic2D) Transposed(octaves int) TilingClassic2D {
	checkTranspose(octaves)
	n.wavelength[0] <<= octaves
	n.wavelength[1] <<= octaves
	return n
}

func classic2D(t *util.PermutationTable, wx, wy int, x, y float64) float64 {
	xi, dx := floor(x)
	yi, dy := floor(y)

	x0, x1 := wrap(xi, wx), wrap(xi+1, wx)
	y0, y1 := wrap(yi, wy), wrap(yi+1, wy)

	n00 := grad2(t.Hash2(x0, y0), dx, dy)
	n10 := grad2(t.Hash2(x1, y0), dx-1, dy)
	n01 := grad2(t.Hash2(x0, y1), dx, dy-1)
	n11 := grad2(t.Hash2(x1, y1), dx-1, dy-1)

	u, v := fade(dx), fade(dy)
	return classic2DNorm * lerp(v, lerp(u, n00, n10), lerp(u, n01, n11))
}

// Classic3D is Perlin's improved lattice gradient noise in three dimensions.
type Classic3D struct {
	params
}

// NewClassic3D returns 3D lattice gradient noise.
func NewClassic3D(amplitude, frequency float64, seed uint32) Classic3D {
	return Classic3D{newParams(amplitude, frequency, seed)}
}

func (n Classic3D) Eval2(x, y float64) float64 { return n.Eval3(x, y, 0) }

func (n Classic3D) Eval3(x, y, z float64) float64 {
	f := n.frequency
	return n.amplitude * classic3D(&n.table, [3]int{}, x*f, y*f, z*f)
}

func (n Classic3D) Eval4(x, y, z, _ float64) float64 { return n.Eval3(x, y, z) }

func (n Classic3D) AmplitudeScaled(factor float64) Classic3D {
	return Classic3D{n.amplitudeScaled(factor)}
}

func (n Classic3D) FrequencyScaled(factor float64) Classic3D {
	return Classic3D{n.frequencyScaled(factor)}
}

func (n Classic3D) Reseeded() Classic3D {
	return Classic3D{n.reseeded()}
}

// TilingClassic3D is Classic3D repeating every wavelength lattice cells.
type TilingClassic3D struct {
	params
	wavelength [3]int
}

// NewTilingClassic3D returns 3D lattice gradient noise with period
// wavelength[i]/frequency along axis i.
func NewTilingClassic3D(amplitude, frequency float64, seed uint32, wavelength [3]int) TilingClassic3D {
	checkWavelength(wavelength[:])
	return TilingClassic3D{newParams(amplitude, frequency, seed), wavelength}
}

// Wavelength returns the period in lattice cells.
func (n TilingClassic3D) Wavelength() [3]int { return n.wavelength }

func (n TilingClassic3D) Eval2(x, y float64) float64 { return n.Eval3(x, y, 0) }

func (n TilingClassic3D) Eval3(x, y, z float64) float64 {
	f := n.frequency
	return n.amplitude * classic3D(&n.table, n.wavelength, x*f, y*f, z*f)
}

func (n TilingClassic3D) Eval4(x, y, z, _ float64) float64 { return n.Eval3(x, y, z) }

func (n TilingClassic3D) AmplitudeScaled(factor float64) TilingClassic3D {
	return TilingClassic3D{n.amplitudeScaled(factor), n.wavelength}
}

func (n TilingClassic3D) FrequencyScaled(factor float64) TilingClassic3D {
	return TilingClassic3D{n.frequencyScaled(factor), n.wavelength}
}

func (n TilingClassic3D) Reseeded() TilingClassic3D {
	return TilingClassic3D{n.reseeded(), n.wavelength}
}

func (n TilingClassic3D) Transposed(octaves int) TilingClassic3D {
	checkTranspose(octaves)
	for i := range n.wavelength {
		n.wavelength[i] <<= octaves
	}
	return n
}

func classic3D(t *util.PermutationTable, w [3]int, x, y, z float64) float64 {
	xi, dx := floor(x)
	yi, dy := floor(y)
	zi, dz := floor(z)

	x0, x1 := wrap(xi, w[0]), wrap(xi+1, w[0])
	y0, y1 := wrap(yi, w[1]), wrap(yi+1, w[1])
	z0, z1 := wrap(zi, w[2]), wrap(zi+1, w[2])

	n000 := grad3(t.Hash3(x0, y0, z0), dx, dy, dz)
	n100 := grad3(t.Hash3(x1, y0, z0), dx-1, dy, dz)
	n010 := grad3(t.Hash3(x0, y1, z0), dx, dy-1, dz)
	n110 := grad3(t.Hash3(x1, y1, z0), dx-1, dy-1, dz)
	n001 := grad3(t.Hash3(x0, y0, z1), dx, dy, dz-1)
	n101 := grad3(t.Hash3(x1, y0, z1), dx-1, dy, dz-1)
	n011 := grad3(t.Hash3(x0, y1, z1), dx, dy-1, dz-1)
	n111 := grad3(t.Hash3(x1, y1, z1), dx-1, dy-1, dz-1)

	u, v, s := fade(dx), fade(dy), fade(dz)
	return classic3DNorm * lerp(s,
		lerp(v, lerp(u, n000, n100), lerp(u, n010, n110)),
		lerp(v, lerp(u, n001, n101), lerp(u, n011, n111)))
}
