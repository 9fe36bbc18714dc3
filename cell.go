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
	"sort"

	"github.com/zach-klippenstein/gonoise/util"
)

// Every lattice coordinate owns one feature point, jittered at most half a
// cell from it along each axis. A sample is always within half a cell of its
// nearest lattice coordinate (near), so the squared distance to near's feature
// point is below one per axis. That bounds the search to the cells listed
// below.
const (
	cell2DMaxR2 = 2.0
	cell3DMaxR2 = 3.0
)

// After finishing ring i, no unvisited cell can beat a squared distance at or
// below threshold i.
var (
	cell2DThresholds = []float64{0.25, 1.0}
	cell3DThresholds = []float64{0.25, 0.5, 0.75, 1.0, 1.25, 1.5, 2.0, 2.25, 2.5, 2.75}

	cell2DRings = buildCellRings(2, cell2DThresholds, cell2DMaxR2)
	cell3DRings = buildCellRings(3, cell3DThresholds, cell3DMaxR2)
)

// ringCell is a candidate cell relative to near. Offsets count in the
// direction of the sample's quadrant, so +1 is the neighbour on the sample's
// side and -1 the one behind near.
type ringCell struct {
	offset [3]int
	min    float64 // squared distance bound over every sample position
}

// axisMinDistance is the smallest possible distance along one axis from a
// sample to the feature region of a cell k steps away from near.
func axisMinDistance(k int) float64 {
	switch {
	case k > 0:
		return float64(k - 1)
	case k < 0:
		return float64(-k) - 0.5
	}
	return 0
}

// axisBound is axisMinDistance for a sample ad = |d| away from near.
func axisBound(k int, ad float64) float64 {
	switch {
	case k > 0:
		return float64(k) - ad - 0.5
	case k < 0:
		return float64(-k) + ad - 0.5
	}
	return 0
}

func buildCellRings(dims int, thresholds []float64, maxR2 float64) [][]ringCell {
	span := func(axis int) int {
		if axis < dims {
			return 2
		}
		return 0
	}

	rings := make([][]ringCell, len(thresholds)+1)
	for kx := -span(0); kx <= span(0); kx++ {
		for ky := -span(1); ky <= span(1); ky++ {
			for kz := -span(2); kz <= span(2); kz++ {
				if kx == 0 && ky == 0 && kz == 0 {
					continue
				}
				var m float64
				for _, k := range []int{kx, ky, kz} {
					d := axisMinDistance(k)
					m += d * d
				}
				if m >= maxR2 {
					continue
				}
				ring := 0
				for ring < len(thresholds) && thresholds[ring] <= m {
					ring++
				}
				rings[ring] = append(rings[ring], ringCell{[3]int{kx, ky, kz}, m})
			}
		}
	}

	for _, ring := range rings {
		sort.SliceStable(ring, func(i, j int) bool { return ring[i].min < ring[j].min })
	}
	return rings
}

// Feature point jitter per hash byte: 4+4 bits in 2D, 3+3+2 bits in 3D. The
// 2-bit axis is bumped by half a step on odd lattice parity, so neighbouring
// cells together cover eight positions on it.
var (
	jitter2D = func() (j [256][2]float64) {
		for h := range j {
			j[h] = [2]float64{
				(float64(h&15)+0.5)/16 - 0.5,
				(float64(h>>4)+0.5)/16 - 0.5,
			}
		}
		return
	}()

	jitter3D = func() (j [2][256][3]float64) {
		for parity := range j {
			for h := range j[parity] {
				j[parity][h] = [3]float64{
					(float64(h&7)+0.5)/8 - 0.5,
					(float64((h>>3)&7)+0.5)/8 - 0.5,
					(float64(h>>6)+0.25+0.5*float64(parity))/4 - 0.5,
				}
			}
		}
		return
	}()
)

func feature2D(t *util.PermutationTable, w [2]int, cx, cy int) *[2]float64 {
	return &jitter2D[t.Hash2(wrap(cx, w[0]), wrap(cy, w[1]))]
}

func feature3D(t *util.PermutationTable, w [3]int, cx, cy, cz int) *[3]float64 {
	x, y, z := wrap(cx, w[0]), wrap(cy, w[1]), wrap(cz, w[2])
	return &jitter3D[(x+y+z)&1][t.Hash3(x, y, z)]
}

// splitCell finds the lattice coordinate nearest v, the offset d = v - near,
// and the quadrant direction q, the sign of d.
func splitCell(v float64) (near int, d float64, q int) {
	b, f := floor(v)
	if f < 0.5 {
		return b, f, 1
	}
	return b + 1, f - 1, -1
}

// nearestCell2D returns the lattice coordinate whose feature point is closest
// to (x, y), and the squared distance to it. Wavelengths of zero disable
// wrapping.
func nearestCell2D(t *util.PermutationTable, w [2]int, x, y float64) ([2]int, float64) {
	nx, dx, qx := splitCell(x)
	ny, dy, qy := splitCell(y)
	adx, ady := abs(dx), abs(dy)

	j := feature2D(t, w, nx, ny)
	ex, ey := dx-j[0], dy-j[1]
	best, r2 := [2]int{nx, ny}, ex*ex+ey*ey

	for i, ring := range cell2DRings {
		for c := range ring {
			k := &ring[c].offset
			bx, by := axisBound(k[0], adx), axisBound(k[1], ady)
			if bx*bx+by*by >= r2 {
				continue
			}
			ox, oy := k[0]*qx, k[1]*qy
			j := feature2D(t, w, nx+ox, ny+oy)
			ex, ey := dx-float64(ox)-j[0], dy-float64(oy)-j[1]
			if d2 := ex*ex + ey*ey; d2 < r2 {
				best, r2 = [2]int{nx + ox, ny + oy}, d2
			}
		}
		if i < len(cell2DThresholds) && r2 <= cell2DThresholds[i] {
			break
		}
	}
	return best, r2
}

func nearestCell3D(t *util.PermutationTable, w [3]int, x, y, z float64) ([3]int, float64) {
	nx, dx, qx := splitCell(x)
	ny, dy, qy := splitCell(y)
	nz, dz, qz := splitCell(z)
	adx, ady, adz := abs(dx), abs(dy), abs(dz)

	j := feature3D(t, w, nx, ny, nz)
	ex, ey, ez := dx-j[0], dy-j[1], dz-j[2]
	best, r2 := [3]int{nx, ny, nz}, ex*ex+ey*ey+ez*ez

	for i, ring := range cell3DRings {
		for c := range ring {
			k := &ring[c].offset
			bx, by, bz := axisBound(k[0], adx), axisBound(k[1], ady), axisBound(k[2], adz)
			if bx*bx+by*by+bz*bz >= r2 {
				continue
			}
			ox, oy, oz := k[0]*qx, k[1]*qy, k[2]*qz
			j := feature3D(t, w, nx+ox, ny+oy, nz+oz)
			ex, ey, ez := dx-float64(ox)-j[0], dy-float64(oy)-j[1], dz-float64(oz)-j[2]
			if d2 := ex*ex + ey*ey + ez*ez; d2 < r2 {
				best, r2 = [3]int{nx + ox, ny + oy, nz + oz}, d2
			}
		}
		if i < len(cell3DThresholds) && r2 <= cell3DThresholds[i] {
			break
		}
	}
	return best, r2
}

// Cell2D is Worley noise: the squared distance from the sample to the
// nearest feature point, times the amplitude.
type Cell2D struct {
	params
}

// NewCell2D returns 2D cell noise.
func NewCell2D(amplitude, frequency float64, seed uint32) Cell2D {
	return Cell2D{newParams(amplitude, frequency, seed)}
}

// Nearest returns the lattice coordinate owning the feature point closest to
// (x, y), and the squared distance to it in lattice units.
func (n Cell2D) Nearest(x, y float64) (cell [2]int, r2 float64) {
	return nearestCell2D(&n.table, [2]int{}, x*n.frequency, y*n.frequency)
}

func (n Cell2D) Eval2(x, y float64) float64 {
	_, r2 := n.Nearest(x, y)
	return n.amplitude * r2
}

func (n Cell2D) Eval3(x, y, _ float64) float64    { return n.Eval2(x, y) }
func (n Cell2D) Eval4(x, y, _, _ float64) float64 { return n.Eval2(x, y) }

func (n Cell2D) AmplitudeScaled(factor float64) Cell2D {
	return Cell2D{n.amplitudeScaled(factor)}
}

func (n Cell2D) FrequencyScaled(factor float64) Cell2D {
	return Cell2D{n.frequencyScaled(factor)}
}

func (n Cell2D) Reseeded() Cell2D {
	return Cell2D{n.reseeded()}
}

// TilingCell2D is Cell2D repeating every wavelength lattice cells.
type TilingCell2D struct {
	params
	wavelength [2]int
}

// NewTilingCell2D returns 2D cell noise with period wavelength[i]/frequency
// along axis i.
func NewTilingCell2D(amplitude, frequency float64, seed uint32, wavelength [2]int) TilingCell2D {
	checkWavelength(wavelength[:])
	return TilingCell2D{newParams(amplitude, frequency, seed), wavelength}
}

// Wavelength returns the period in lattice cells.
func (n TilingCell2D) Wavelength() [2]int { return n.wavelength }

// Nearest is Cell2D.Nearest. The returned cell is not reduced modulo the
// wavelength.
func (n TilingCell2D) Nearest(x, y float64) (cell [2]int, r2 float64) {
	return nearestCell2D(&n.table, n.wavelength, x*n.frequency, y*n.frequency)
}

func (n TilingCell2D) Eval2(x, y float64) float64 {
	_, r2 := n.Nearest(x, y)
	return n.amplitude * r2
}

func (n TilingCell2D) Eval3(x, y, _ float64) float64    { return n.Eval2(x, y) }
func (n TilingCell2D) Eval4(x, y, _, _ float64) float64 { return n.Eval2(x, y) }

func (n TilingCell2D) AmplitudeScaled(factor float64) TilingCell2D {
	return TilingCell2D{n.amplitudeScaled(factor), n.wavelength}
}

func (n TilingCell2D) FrequencyScaled(factor float64) TilingCell2D {
	return TilingCell2D{n.frequencyScaled(factor), n.wavelength}
}

func (n TilingCell2D) Reseeded() TilingCell2D {
	return TilingCell2D{n.reseeded(), n.wavelength}
}

func (n TilingCell2D) Transposed(octaves int) TilingCell2D {
	checkTranspose(octaves)
	n.wavelength[0] <<= octaves
	n.wavelength[1] <<= octaves
	return n
}

// Cell3D is Worley noise in three dimensions.
type Cell3D struct {
	params
}

// NewCell3D returns 3D cell noise.
func NewCell3D(amplitude, frequency float64, seed uint32) Cell3D {
	return Cell3D{newParams(amplitude, frequency, seed)}
}

// Nearest returns the lattice coordinate owning the feature point closest to
// (x, y, z), and the squared distance to it in lattice units.
func (n Cell3D) Nearest(x, y, z float64) (cell [3]int, r2 float64) {
	f := n.frequency
	return nearestCell3D(&n.table, [3]int{}, x*f, y*f, z*f)
}

func (n Cell3D) Eval2(x, y float64) float64 { return n.Eval3(x, y, 0) }

func (n Cell3D) Eval3(x, y, z float64) float64 {
	_, r2 := n.Nearest(x, y, z)
	return n.amplitude * r2
}

func (n Cell3D) Eval4(x, y, z, _ float64) float64 { return n.Eval3(x, y, z) }

func (n Cell3D) AmplitudeScaled(factor float64) Cell3D {
	return Cell3D{n.amplitudeScaled(factor)}
}

func (n Cell3D) FrequencyScaled(factor float64) Cell3D {
	return Cell3D{n.frequencyScaled(factor)}
}

func (n Cell3D) Reseeded() Cell3D {
	return Cell3D{n.reseeded()}
}

// TilingCell3D is Cell3D repeating every wavelength lattice cells.
type TilingCell3D struct {
	params
	wavelength [3]int
}

// NewTilingCell3D returns 3D cell noise with period wavelength[i]/frequency
// along axis i.
func NewTilingCell3D(amplitude, frequency float64, seed uint32, wavelength [3]int) TilingCell3D {
	checkWavelength(wavelength[:])
	return TilingCell3D{newParams(amplitude, frequency, seed), wavelength}
}

// Wavelength returns the period in lattice cells.
func (n TilingCell3D) Wavelength() [3]int { return n.wavelength }

func (n TilingCell3D) Nearest(x, y, z float64) (cell [3]int, r2 float64) {
	f := n.frequency
	return nearestCell3D(&n.table, n.wavelength, x*f, y*f, z*f)
}

func (n TilingCell3D) Eval2(x, y float64) float64 { return n.Eval3(x, y, 0) }

func (n TilingCell3D) Eval3(x, y, z float64) float64 {
	_, r2 := n.Nearest(x, y, z)
	return n.amplitude * r2
}

func (n TilingCell3D) Eval4(x, y, z, _ float64) float64 { return n.Eval3(x, y, z) }

func (n TilingCell3D) AmplitudeScaled(factor float64) TilingCell3D {
	return TilingCell3D{n.amplitudeScaled(factor), n.wavelength}
}

func (n TilingCell3D) FrequencyScaled(factor float64) TilingCell3D {
	return TilingCell3D{n.frequencyScaled(factor), n.wavelength}
}

func (n TilingCell3D) Reseeded() TilingCell3D {
	return TilingCell3D{n.reseeded(), n.wavelength}
}

func (n TilingCell3D) Transposed(octaves int) TilingCell3D {
	checkTranspose(octaves)
	for i := range n.wavelength {
		n.wavelength[i] <<= octaves
	}
	return n
}
