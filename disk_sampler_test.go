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
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func minSeparation(points []Point) float64 {
	best := math.Inf(1)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			best = math.Min(best, math.Sqrt(points[i].distance2(points[j])))
		}
	}
	return best
}

func TestDiskSampler2D(t *testing.T) {
	Convey("Given a sampler seeded with 0", t, func() {
		sampler := NewDiskSampler2D(0)

		Convey("When filling 200x200 with radius 20 and 30 candidates", func() {
			points := sampler.Generate(20, 200, 200, 30)

			Convey("Every pair of points is at least the radius apart", func() {
				So(minSeparation(points), ShouldBeGreaterThanOrEqualTo, 20-1e-9)
			})

			Convey("Every point lies inside the region", func() {
				for _, p := range points {
					So(p.X, ShouldBeBetweenOrEqual, 0, 200)
					So(p.Y, ShouldBeBetweenOrEqual, 0, 200)
				}
			})

			Convey("The region is well covered", func() {
				So(len(points), ShouldBeGreaterThan, 30)
			})

			Convey("The first point is the centre", func() {
				So(points[0], ShouldResemble, Point{100, 100})
			})
		})

		Convey("When starting from a corner", func() {
			points := sampler.GenerateFrom(5, 60, 40, 20, Point{0, 0})

			So(points[0], ShouldResemble, Point{0, 0})
			So(minSeparation(points), ShouldBeGreaterThanOrEqualTo, 5-1e-9)
		})

		Convey("When generating twice", func() {
			first := sampler.Generate(10, 100, 100, 30)
			second := sampler.Generate(10, 100, 100, 30)

			Convey("The sets differ", func() {
				So(second, ShouldNotResemble, first)
			})

			Convey("A second sampler with the same seed repeats both", func() {
				other := NewDiskSampler2D(0)
				So(other.Generate(10, 100, 100, 30), ShouldResemble, first)
				So(other.Generate(10, 100, 100, 30), ShouldResemble, second)
			})
		})

		Convey("A sampler with another seed gives another set", func() {
			So(NewDiskSampler2D(1).Generate(10, 100, 100, 30), ShouldNotResemble, sampler.Generate(10, 100, 100, 30))
		})

		Convey("Invalid arguments panic", func() {
			So(func() { sampler.Generate(0, 100, 100, 30) }, ShouldPanic)
			So(func() { sampler.Generate(10, -1, 100, 30) }, ShouldPanic)
			So(func() { sampler.Generate(10, 100, 100, 0) }, ShouldPanic)
			So(func() { sampler.GenerateFrom(10, 100, 100, 30, Point{100, 50}) }, ShouldPanic)
		})
	})
}

func TestDiskSamplerRing(t *testing.T) {
	Convey("Candidate offsets lie in the annulus [1, 2)", t, func() {
		sampler := NewDiskSampler2D(3)
		for _, p := range sampler.ring {
			d := math.Sqrt(p.distance2(Point{}))
			So(d, ShouldBeGreaterThanOrEqualTo, 1)
			So(d, ShouldBeLessThan, 2)
		}
	})
}

func TestLockedDiskSampler(t *testing.T) {
	Convey("Given a locked sampler shared by several goroutines", t, func() {
		sampler := NewLockedDiskSampler(NewDiskSampler2D(9))
		results := make([][]Point, 8)

		var waiter sync.WaitGroup
		waiter.Add(len(results))
		for i := range results {
			go func(i int) {
				defer waiter.Done()
				results[i] = sampler.Generate(8, 80, 80, 30)
			}(i)
		}
		waiter.Wait()

		Convey("Every set is still a valid disk set", func() {
			for _, points := range results {
				So(minSeparation(points), ShouldBeGreaterThanOrEqualTo, 8-1e-9)
			}
		})
	})
}

func BenchmarkDiskSampler2D(b *testing.B) {
	sampler := NewDiskSampler2D(0)
	for i := 0; i < b.N; i++ {
		sampler.Generate(4, 512, 512, 30)
	}
}
