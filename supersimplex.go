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
	superSimplex2DRadius2 = 2.0 / 3
	superSimplex2DNorm    = 18.5
	superSimplex3DRadius2 = 0.75
	superSimplex3DNorm    = 9

	// rotate3D turns the input half a turn about (1,1,1), so the cubic
	// lattices do not line up with the input axes.
	rotate3D = 2.0 / 3

	// hashed into the second 3D lattice to decorrelate it from the first.
	offsetLatticeMask = 0x5a
)

// SuperSimplex2D is simplex-family noise with a wider kernel than Simplex2D,
// summing four lattice vertices per sample instead of three.
type SuperSimplex2D struct {
	params
}

// NewSuperSimplex2D returns 2D SuperSimplex noise.
func NewSuperSimplex2D(amplitude, frequency float64, seed uint32) SuperSimplex2D {
	return SuperSimplex2D{newParams(amplitude, frequency, seed)}
}

func (n SuperSimplex2D) Eval2(x, y float64) float64 {
	return n.amplitude * superSimplex2D(&n.table, x*n.frequency, y*n.frequency)
}

func (n SuperSimplex2D) Eval3(x, y, _ float64) float64    { return n.Eval2(x, y) }
func (n SuperSimplex2D) Eval4(x, y, _, _ float64) float64 { return n.Eval2(x, y) }

func (n SuperSimplex2D) AmplitudeScaled(factor float64) SuperSimplex2D {
	return SuperSimplex2D{n.amplitudeScaled(factor)}
}

func (n SuperSimplex2D) FrequencyScaled(factor float64) SuperSimplex2D {
	return SuperSimplex2D{n.frequencyScaled(factor)}
}

func (n SuperSimplex2D) Reseeded() SuperSimplex2D {
	return SuperSimplex2D{n.reseeded()}
}

func superSimplex2D(t *util.PermutationTable, x, y float64) float64 {
	s := skew2D(x, y)

	// (0,0) and (1,1) are within range of the whole cell.
	value := superSimplex2DVertex(t, &s, 0, 0) + superSimplex2DVertex(t, &s, 1, 1)

	xmyi := s.xi - s.yi
	if s.xi+s.yi > 1 {
		// above the u+v=1 diagonal
		if s.xi+xmyi > 1 {
			value += superSimplex2DVertex(t, &s, 2, 1)
		} else {
			value += superSimplex2DVertex(t, &s, 0, 1)
		}
		if s.yi-xmyi > 1 {
			value += superSimplex2DVertex(t, &s, 1, 2)
		} else {
			value += superSimplex2DVertex(t, &s, 1, 0)
		}
	} else {
		if s.xi+xmyi < 0 {
			value += superSimplex2DVertex(t, &s, -1, 0)
		} else {
			value += superSimplex2DVertex(t, &s, 1, 0)
		}
		if s.yi < xmyi {
			value += superSimplex2DVertex(t, &s, 0, -1)
		} else {
			value += superSimplex2DVertex(t, &s, 0, 1)
		}
	}

	return superSimplex2DNorm * value
}

func superSimplex2DVertex(t *util.PermutationTable, s *skewed2D, a, b int) float64 {
	dx, dy := s.offset(a, b)
	k := falloff(superSimplex2DRadius2 - dx*dx - dy*dy)
	if k == 0 {
		return 0
	}
	return k * unitGrad2(t.Hash2(s.xsb+a, s.ysb+b), dx, dy)
}

// SuperSimplex3D is simplex-family noise evaluated over two interleaved cubic
// lattices offset by half a cell (a body-centred cubic lattice).
type SuperSimplex3D struct {
	params
}

// NewSuperSimplex3D returns 3D SuperSimplex noise.
func NewSuperSimplex3D(amplitude, frequency float64, seed uint32) SuperSimplex3D {
	return SuperSimplex3D{newParams(amplitude, frequency, seed)}
}

func (n SuperSimplex3D) Eval2(x, y float64) float64 { return n.Eval3(x, y, 0) }

func (n SuperSimplex3D) Eval3(x, y, z float64) float64 {
	f := n.frequency
	return n.amplitude * superSimplex3D(&n.table, x*f, y*f, z*f)
}

func (n SuperSimplex3D) Eval4(x, y, z, _ float64) float64 { return n.Eval3(x, y, z) }

func (n SuperSimplex3D) AmplitudeScaled(factor float64) SuperSimplex3D {
	return SuperSimplex3D{n.amplitudeScaled(factor)}
}

func (n SuperSimplex3D) FrequencyScaled(factor float64) SuperSimplex3D {
	return SuperSimplex3D{n.frequencyScaled(factor)}
}

func (n SuperSimplex3D) Reseeded() SuperSimplex3D {
	return SuperSimplex3D{n.reseeded()}
}

func superSimplex3D(t *util.PermutationTable, x, y, z float64) float64 {
	r := rotate3D * (x + y + z)
	xr, yr, zr := r-x, r-y, r-z

	value := cubicLattice3D(t, 0, xr, yr, zr) +
		cubicLattice3D(t, offsetLatticeMask, xr+0.5, yr+0.5, zr+0.5)
	return superSimplex3DNorm * value
}

// cubicLattice3D sums the contributions of one cubic lattice. Starting from
// the nearest vertex, moving one step along an axis toward the sample costs
// 1-2|d| of squared distance on that axis, so a neighbour is only in range
// when the nearest vertex leaves enough kernel budget for its axes.
func cubicLattice3D(t *util.PermutationTable, mask uint8, x, y, z float64) float64 {
	xb, dx := nearest(x)
	yb, dy := nearest(y)
	zb, dz := nearest(z)
	sx, sy, sz := toward(dx), toward(dy), toward(dz)

	a0 := superSimplex3DRadius2 - dx*dx - dy*dy - dz*dz
	ex, ey, ez := 1-2*abs(dx), 1-2*abs(dy), 1-2*abs(dz)

	vertex := func(a float64, i, j, k int, dx, dy, dz float64) float64 {
		w := falloff(a)
		if w == 0 {
			return 0
		}
		return w * grad3(t.At(int(t.Hash3(i, j, k)^mask)), dx, dy, dz)
	}

	value := vertex(a0, xb, yb, zb, dx, dy, dz)

	ax, ay, az := a0-ex, a0-ey, a0-ez
	if ax > 0 {
		value += vertex(ax, xb+sx, yb, zb, dx-float64(sx), dy, dz)
	}
	if ay > 0 {
		value += vertex(ay, xb, yb+sy, zb, dx, dy-float64(sy), dz)
	}
	if az > 0 {
		value += vertex(az, xb, yb, zb+sz, dx, dy, dz-float64(sz))
	}
	if ax > 0 && ay > 0 {
		value += vertex(ax-ey, xb+sx, yb+sy, zb, dx-float64(sx), dy-float64(sy), dz)
	}
	if ax > 0 && az > 0 {
		value += vertex(ax-ez, xb+sx, yb, zb+sz, dx-float64(sx), dy, dz-float64(sz))
	}
	if ay > 0 && az > 0 {
		value += vertex(ay-ez, xb, yb+sy, zb+sz, dx, dy-float64(sy), dz-float64(sz))
	}
	// Moving along all three axes costs at least 0.75, the whole radius.
	return value
}

// nearest rounds v to the closest integer and returns the offset from it,
// in [-0.5, 0.5).
func nearest(v float64) (int, float64) {
	i, f := floor(v + 0.5)
	return i, f - 0.5
}

func toward(d float64) int {
	if d < 0 {
		return -1
	}
	return 1
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
