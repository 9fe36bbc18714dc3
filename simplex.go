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
	squish2D  = 0.366025403784439  // (sqrt(2+1)-1)/2
	stretch2D = -0.211324865405187 // (1/sqrt(2+1)-1)/2
	squish3D  = 1.0 / 3            // (sqrt(3+1)-1)/3
	stretch3D = -1.0 / 6           // (1/sqrt(3+1)-1)/3

	// A vertex is half a unit (squared) from the far face of every simplex
	// around it, so its kernel reaches zero before a sample can leave them.
	simplex2DRadius2 = 0.5
	simplex2DNorm    = 70
	simplex3DRadius2 = 0.5
	simplex3DNorm    = 72
)

// Simplex2D is Perlin's simplex noise in two dimensions.
type Simplex2D struct {
	params
}

// NewSimplex2D returns 2D simplex noise.
func NewSimplex2D(amplitude, frequency float64, seed uint32) Simplex2D {
	return Simplex2D{newParams(amplitude, frequency, seed)}
}

func (n Simplex2D) Eval2(x, y float64) float64 {
	return n.amplitude * simplex2D(&n.table, x*n.frequency, y*n.frequency)
}

func (n Simplex2D) Eval3(x, y, _ float64) float64    { return n.Eval2(x, y) }
func (n Simplex2D) Eval4(x, y, _, _ float64) float64 { return n.Eval2(x, y) }

func (n Simplex2D) AmplitudeScaled(factor float64) Simplex2D {
	return Simplex2D{n.amplitudeScaled(factor)}
}

func (n Simplex2D) FrequencyScaled(factor float64) Simplex2D {
	return Simplex2D{n.frequencyScaled(factor)}
}

func (n Simplex2D) Reseeded() Simplex2D {
	return Simplex2D{n.reseeded()}
}

// skewed2D is a sample expressed relative to the origin of its cell in the
// skewed lattice.
type skewed2D struct {
	xsb, ysb int
	xi, yi   float64
}

func skew2D(x, y float64) skewed2D {
	s := (x + y) * squish2D
	xsb, xi := floor(x + s)
	ysb, yi := floor(y + s)
	return skewed2D{xsb, ysb, xi, yi}
}

// offset returns the displacement in unskewed space from lattice vertex
// (xsb+a, ysb+b) to the sample.
func (s *skewed2D) offset(a, b int) (dx, dy float64) {
	t := (s.xi + s.yi - float64(a+b)) * stretch2D
	return s.xi - float64(a) + t, s.yi - float64(b) + t
}

func simplex2D(t *util.PermutationTable, x, y float64) float64 {
	s := skew2D(x, y)

	// The cell splits along its short diagonal from (0,0) to (1,1).
	a, b := 0, 1
	if s.xi >= s.yi {
		a, b = 1, 0
	}

	value := simplex2DVertex(t, &s, 0, 0) +
		simplex2DVertex(t, &s, a, b) +
		simplex2DVertex(t, &s, 1, 1)
	return simplex2DNorm * value
}

func simplex2DVertex(t *util.PermutationTable, s *skewed2D, a, b int) float64 {
	dx, dy := s.offset(a, b)
	k := falloff(simplex2DRadius2 - dx*dx - dy*dy)
	if k == 0 {
		return 0
	}
	return k * grad2(t.Hash2(s.xsb+a, s.ysb+b), dx, dy)
}

// Simplex3D is Perlin's simplex noise in three dimensions.
type Simplex3D struct {
	params
}

// NewSimplex3D returns 3D simplex noise.
func NewSimplex3D(amplitude, frequency float64, seed uint32) Simplex3D {
	return Simplex3D{newParams(amplitude, frequency, seed)}
}

func (n Simplex3D) Eval2(x, y float64) float64 { return n.Eval3(x, y, 0) }

func (n Simplex3D) Eval3(x, y, z float64) float64 {
	f := n.frequency
	return n.amplitude * simplex3D(&n.table, x*f, y*f, z*f)
}

func (n Simplex3D) Eval4(x, y, z, _ float64) float64 { return n.Eval3(x, y, z) }

func (n Simplex3D) AmplitudeScaled(factor float64) Simplex3D {
	return Simplex3D{n.amplitudeScaled(factor)}
}

func (n Simplex3D) FrequencyScaled(factor float64) Simplex3D {
	return Simplex3D{n.frequencyScaled(factor)}
}

func (n Simplex3D) Reseeded() Simplex3D {
	return Simplex3D{n.reseeded()}
}

type skewed3D struct {
	xsb, ysb, zsb int
	xi, yi, zi    float64
}

func skew3D(x, y, z float64) skewed3D {
	s := (x + y + z) * squish3D
	xsb, xi := floor(x + s)
	ysb, yi := floor(y + s)
	zsb, zi := floor(z + s)
	return skewed3D{xsb, ysb, zsb, xi, yi, zi}
}

func (s *skewed3D) offset(v [3]int) (dx, dy, dz float64) {
	t := (s.xi + s.yi + s.zi - float64(v[0]+v[1]+v[2])) * stretch3D
	return s.xi - float64(v[0]) + t, s.yi - float64(v[1]) + t, s.zi - float64(v[2]) + t
}

// The two intermediate vertices of the tetrahedron holding the sample,
// indexed by the ordering of the fractional offsets.
var simplex3DCorners = [6][2][3]int{
	{{1, 0, 0}, {1, 1, 0}}, // x >= y >= z
	{{1, 0, 0}, {1, 0, 1}}, // x >= z > y
	{{0, 0, 1}, {1, 0, 1}}, // z > x >= y
	{{0, 0, 1}, {0, 1, 1}}, // z > y > x
	{{0, 1, 0}, {0, 1, 1}}, // y >= z > x
	{{0, 1, 0}, {1, 1, 0}}, // y > x >= z
}

func simplex3DRegion(xi, yi, zi float64) int {
	if xi >= yi {
		switch {
		case yi >= zi:
			return 0
		case xi >= zi:
			return 1
		default:
			return 2
		}
	}
	switch {
	case yi < zi:
		return 3
	case xi < zi:
		return 4
	default:
		return 5
	}
}

func simplex3D(t *util.PermutationTable, x, y, z float64) float64 {
	s := skew3D(x, y, z)
	corners := &simplex3DCorners[simplex3DRegion(s.xi, s.yi, s.zi)]

	value := simplex3DVertex(t, &s, [3]int{0, 0, 0}) +
		simplex3DVertex(t, &s, corners[0]) +
		simplex3DVertex(t, &s, corners[1]) +
		simplex3DVertex(t, &s, [3]int{1, 1, 1})
	return simplex3DNorm * value
}

func simplex3DVertex(t *util.PermutationTable, s *skewed3D, v [3]int) float64 {
	dx, dy, dz := s.offset(v)
	k := falloff(simplex3DRadius2 - dx*dx - dy*dy - dz*dz)
	if k == 0 {
		return 0
	}
	return k * grad3(t.Hash3(s.xsb+v[0], s.ysb+v[1], s.zsb+v[2]), dx, dy, dz)
}
