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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zach-klippenstein/gonoise/util"
)

// bruteCell2D scans every cell within four of the sample.
func bruteCell2D(t *util.PermutationTable, w [2]int, x, y float64) ([2]int, float64) {
	bx, _ := floor(x)
	by, _ := floor(y)
	best, r2 := [2]int{}, math.Inf(1)
	for i := bx - 4; i <= bx+4; i++ {
		for j := by - 4; j <= by+4; j++ {
			f := feature2D(t, w, i, j)
			ex, ey := x-float64(i)-f[0], y-float64(j)-f[1]
			if d2 := ex*ex + ey*ey; d2 < r2 {
				best, r2 = [2]int{i, j}, d2
			}
		}
	}
	return best, r2
}

func bruteCell3D(t *util.PermutationTable, w [3]int, x, y, z float64) ([3]int, float64) {
	bx, _ := floor(x)
	by, _ := floor(y)
	bz, _ := floor(z)
	best, r2 := [3]int{}, math.Inf(1)
	for i := bx - 4; i <= bx+4; i++ {
		for j := by - 4; j <= by+4; j++ {
			for k := bz - 4; k <= bz+4; k++ {
				f := feature3D(t, w, i, j, k)
				ex, ey, ez := x-float64(i)-f[0], y-float64(j)-f[1], z-float64(k)-f[2]
				if d2 := ex*ex + ey*ey + ez*ez; d2 < r2 {
					best, r2 = [3]int{i, j, k}, d2
				}
			}
		}
	}
	return best, r2
}

func TestCell2DMatchesBruteForce(t *testing.T) {
	t.Parallel()
	next := coordinates(20, 200)

	for seed := uint32(0); seed < 4; seed++ {
		n := NewCell2D(1, 1, seed)
		table := n.Table()
		for i := 0; i < SampleSize; i++ {
			x, y := next(), next()
			cell, r2 := n.Nearest(x, y)
			wantCell, wantR2 := bruteCell2D(&table, [2]int{}, x, y)
			require.InDelta(t, wantR2, r2, 1e-9, "seed %d at (%v, %v)", seed, x, y)
			assert.Equal(t, wantCell, cell, "seed %d at (%v, %v)", seed, x, y)
			assert.Equal(t, r2, n.Eval2(x, y))
		}
	}
}

func TestCell3DMatchesBruteForce(t *testing.T) {
	t.Parallel()
	next := coordinates(21, 200)

	for seed := uint32(0); seed < 4; seed++ {
		n := NewCell3D(1, 1, seed)
		table := n.Table()
		for i := 0; i < SampleSize; i++ {
			x, y, z := next(), next(), next()
			cell, r2 := n.Nearest(x, y, z)
			wantCell, wantR2 := bruteCell3D(&table, [3]int{}, x, y, z)
			require.InDelta(t, wantR2, r2, 1e-9, "seed %d at (%v, %v, %v)", seed, x, y, z)
			assert.Equal(t, wantCell, cell, "seed %d at (%v, %v, %v)", seed, x, y, z)
		}
	}
}

func TestTilingCellMatchesBruteForce(t *testing.T) {
	t.Parallel()
	next := coordinates(22, 50)
	n2 := NewTilingCell2D(1, 1, 3, [2]int{3, 5})
	n3 := NewTilingCell3D(1, 1, 3, [3]int{2, 3, 4})
	t2, t3 := n2.Table(), n3.Table()

	for i := 0; i < SampleSize; i++ {
		x, y, z := next(), next(), next()
		_, r2 := n2.Nearest(x, y)
		_, want2 := bruteCell2D(&t2, n2.Wavelength(), x, y)
		assert.InDelta(t, want2, r2, 1e-9)

		_, r3 := n3.Nearest(x, y, z)
		_, want3 := bruteCell3D(&t3, n3.Wavelength(), x, y, z)
		assert.InDelta(t, want3, r3, 1e-9)
	}
}

func TestCellRange(t *testing.T) {
	t.Parallel()
	next := coordinates(23, 1000)
	n2 := NewCell2D(2, 0.1, 9)
	n3 := NewCell3D(2, 0.1, 9)

	for i := 0; i < SampleSize*10; i++ {
		x, y, z := next(), next(), next()
		v2, v3 := n2.Eval2(x, y), n3.Eval3(x, y, z)
		require.True(t, v2 >= 0 && v2 < 2*cell2DMaxR2, "Cell2D returned %v", v2)
		require.True(t, v3 >= 0 && v3 < 2*cell3DMaxR2, "Cell3D returned %v", v3)
	}
}

func TestCellZeroAtFeaturePoint(t *testing.T) {
	t.Parallel()
	n := NewCell2D(1, 1, 14)
	table := n.Table()
	for i := -3; i <= 3; i++ {
		f := feature2D(&table, [2]int{}, i, 2)
		cell, r2 := n.Nearest(float64(i)+f[0], 2+f[1])
		assert.Equal(t, [2]int{i, 2}, cell)
		assert.InDelta(t, 0, r2, 1e-12)
	}
}

func TestCellRingSchedule(t *testing.T) {
	t.Parallel()
	check := func(rings [][]ringCell, thresholds []float64, maxR2 float64) int {
		total := 0
		for i, ring := range rings {
			for _, c := range ring {
				assert.True(t, c.min < maxR2, "cell %v outside the search radius", c.offset)
				if i > 0 {
					assert.True(t, c.min >= thresholds[i-1], "cell %v in ring %d too close", c.offset, i)
				}
				if i < len(thresholds) {
					assert.True(t, c.min < thresholds[i], "cell %v in ring %d too far", c.offset, i)
				}
			}
			total += len(ring)
		}
		return total
	}

	assert.Equal(t, 14, check(cell2DRings, cell2DThresholds, cell2DMaxR2))
	check(cell3DRings, cell3DThresholds, cell3DMaxR2)

	first := map[[3]int]bool{}
	for _, c := range cell2DRings[0] {
		first[c.offset] = true
	}
	assert.True(t, first[[3]int{1, 0, 0}])
	assert.True(t, first[[3]int{0, 1, 0}])
	assert.True(t, first[[3]int{1, 1, 0}])
}

func TestCellJitterWithinCell(t *testing.T) {
	t.Parallel()
	for h := range jitter2D {
		for _, v := range jitter2D[h] {
			assert.True(t, math.Abs(v) < 0.5)
		}
	}
	for parity := range jitter3D {
		for h := range jitter3D[parity] {
			for _, v := range jitter3D[parity][h] {
				assert.True(t, math.Abs(v) < 0.5)
			}
		}
	}
}
