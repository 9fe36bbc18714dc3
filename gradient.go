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

// Gradient directions for the 2D lattice fields, selected by hash&7.
var gradients2 = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// Gradient directions for the 3D lattice fields, selected by hash&15. These
// are the twelve cube edge midpoints, with four repeated to fill sixteen
// slots.
var gradients3 = [16][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {-1, 1, 0}, {0, -1, 1}, {0, -1, -1},
}

// Sixteen unit vectors evenly spaced around the circle, offset by half a
// step so none is axis aligned. Selected by hash&15.
var unitGradients2 = func() (g [16][2]float64) {
	for i := range g {
		angle := (float64(i) + 0.5) * (2 * math.Pi / 16)
		g[i] = [2]float64{math.Cos(angle), math.Sin(angle)}
	}
	return
}()

func grad2(hash uint8, dx, dy float64) float64 {
	g := &gradients2[hash&7]
	return g[0]*dx + g[1]*dy
}

func grad3(hash uint8, dx, dy, dz float64) float64 {
	g := &gradients3[hash&15]
	return g[0]*dx + g[1]*dy + g[2]*dz
}

func unitGrad2(hash uint8, dx, dy float64) float64 {
	g := &unitGradients2[hash&15]
	return g[0]*dx + g[1]*dy
}

// fade is the quintic ease 6t^5 - 15t^4 + 10t^3. Its first and second
// derivatives vanish at 0 and 1.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// falloff is the radial kernel (r² - d²)^4, zero outside the radius.
func falloff(a float64) float64 {
	if a <= 0 {
		return 0
	}
	a *= a
	return a * a
}
