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
	"math"

	"github.com/zach-klippenstein/gonoise/util"
)

// diskRingSize is the number of candidate offsets precomputed per sampler.
const diskRingSize = 1024

// Point is a 2D position.
type Point struct {
	X, Y float64
}

func (p Point) distance2(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

/*
DiskSampler2D generates Poisson-disk (blue noise) point sets using Bridson's
algorithm: every point in a set is at least radius away from every other,
and no more points fit in the region.

A sampler keeps its random stream and candidate cursor between calls, so a
second Generate on the same sampler returns a different set. Two samplers
with the same seed return the same sequence of sets. A sampler is not safe
for concurrent use; see LockedDiskSampler.
*/
type DiskSampler2D struct {
	// annulus offsets with length in [1, 2), frozen at construction.
	ring   *[diskRingSize]Point
	rng    util.RandomXorshift
	cursor int
}

// NewDiskSampler2D returns a sampler seeded with seed.
func NewDiskSampler2D(seed uint32) *DiskSampler2D {
	return NewDiskSampler2DFromState(util.NewRandomXorshift(seed))
}

// NewDiskSampler2DFromState returns a sampler drawing from rng.
func NewDiskSampler2DFromState(rng util.RandomXorshift) *DiskSampler2D {
	s := &DiskSampler2D{
		ring: new([diskRingSize]Point),
		rng:  rng,
	}
	for i := range s.ring {
		for {
			p := Point{s.rng.Float64()*4 - 2, s.rng.Float64()*4 - 2}
			if d2 := p.distance2(Point{}); d2 >= 1 && d2 < 4 {
				s.ring[i] = p
				break
			}
		}
	}
	return s
}

// Generate fills a width x height region starting from its centre.
func (s *DiskSampler2D) Generate(radius, width, height float64, k int) []Point {
	return s.GenerateFrom(radius, width, height, k, Point{width / 2, height / 2})
}

// GenerateFrom fills a width x height region starting from seed, trying up to
// k candidates around each active point. The returned points are in no
// particular order.
func (s *DiskSampler2D) GenerateFrom(radius, width, height float64, k int, seed Point) []Point {
	checkDisk(radius, width, height, k, seed)

	// work in units of radius, so candidates are simply front + ring offset.
	w, h := width/radius, height/radius
	grid := newDiskGrid(w, h)

	start := Point{seed.X / radius, seed.Y / radius}
	points := []Point{start}
	grid.insert(start, 0)
	active := []Point{start}

	for len(active) > 0 {
		last := len(active) - 1
		front := active[last]

		accepted := false
		for attempt := 0; attempt < k; attempt++ {
			offset := s.ring[s.cursor]
			s.cursor = (s.cursor + 1) % diskRingSize

			c := Point{front.X + offset.X, front.Y + offset.Y}
			if c.X < 0 || c.X >= w || c.Y < 0 || c.Y >= h || grid.crowded(c, points) {
				continue
			}

			grid.insert(c, len(points))
			points = append(points, c)
			active = append(active, c)

			// swap the new point somewhere random so the front does not
			// always follow the newest point.
			j := s.rng.LessThan(uint32(len(active)))
			active[j], active[len(active)-1] = active[len(active)-1], active[j]
			accepted = true
			break
		}

		if !accepted {
			active = active[:last]
		}
	}

	for i := range points {
		points[i].X *= radius
		points[i].Y *= radius
	}
	return points
}

func checkDisk(radius, width, height float64, k int, seed Point) {
	switch {
	case !(radius > 0) || math.IsInf(radius, 0):
		panic(Error.New("disk radius must be positive and finite, got %v", radius))
	case !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0):
		panic(Error.New("disk region must be positive and finite, got %vx%v", width, height))
	case k < 1:
		panic(Error.New("disk candidate count must be at least 1, got %d", k))
	case !(seed.X >= 0 && seed.X < width && seed.Y >= 0 && seed.Y < height):
		panic(Error.New("disk seed point %v outside %vx%v", seed, width, height))
	}
}

// diskGrid is the background acceleration grid. Its cells are 1/sqrt(2)
// units wide, so each holds at most one point.
type diskGrid struct {
	cols, rows int
	// index+1 into the point list, 0 when empty.
	cells []int32
}

func newDiskGrid(w, h float64) *diskGrid {
	cols := int(math.Ceil(w*math.Sqrt2)) + 1
	rows := int(math.Ceil(h*math.Sqrt2)) + 1
	return &diskGrid{
		cols:  cols,
		rows:  rows,
		cells: make([]int32, cols*rows),
	}
}

func (g *diskGrid) cell(p Point) (int, int) {
	return int(p.X * math.Sqrt2), int(p.Y * math.Sqrt2)
}

func (g *diskGrid) insert(p Point, index int) {
	i, j := g.cell(p)
	g.cells[j*g.cols+i] = int32(index + 1)
}

// crowded reports whether an existing point lies closer than one unit to p.
// Such a point can only be in the 5x5 block of cells around p's.
func (g *diskGrid) crowded(p Point, points []Point) bool {
	ci, cj := g.cell(p)
	for j := cj - 2; j <= cj+2; j++ {
		if j < 0 || j >= g.rows {
			continue
		}
		for i := ci - 2; i <= ci+2; i++ {
			if i < 0 || i >= g.cols {
				continue
			}
			if idx := g.cells[j*g.cols+i]; idx != 0 && points[idx-1].distance2(p) < 1 {
				return true
			}
		}
	}
	return false
}
