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

// DistortedNoise warps the domain of a source field by a displacement field.
// Each axis is offset by the displacement evaluated at a cyclic rotation of
// the input coordinates, times strength.
type DistortedNoise[S Noise[S], D Noise[D]] struct {
	source       S
	displacement D
	strength     float64
}

// NewDistorted returns source sampled at coordinates offset by displacement.
func NewDistorted[S Noise[S], D Noise[D]](source S, displacement D, strength float64) DistortedNoise[S, D] {
	return DistortedNoise[S, D]{source, displacement, strength}
}

// NewSelfDistorted returns field distorted by itself.
func NewSelfDistorted[N Noise[N]](field N, strength float64) DistortedNoise[N, N] {
	return NewDistorted(field, field, strength)
}

// Strength returns the displacement scale.
func (d DistortedNoise[S, D]) Strength() float64 { return d.strength }

func (d DistortedNoise[S, D]) Eval2(x, y float64) float64 {
	ox := d.displacement.Eval2(x, y)
	oy := d.displacement.Eval2(y, x)
	k := d.strength
	return d.source.Eval2(x+k*ox, y+k*oy)
}

func (d DistortedNoise[S, D]) Eval3(x, y, z float64) float64 {
	ox := d.displacement.Eval3(x, y, z)
	oy := d.displacement.Eval3(y, z, x)
	oz := d.displacement.Eval3(z, x, y)
	k := d.strength
	return d.source.Eval3(x+k*ox, y+k*oy, z+k*oz)
}

func (d DistortedNoise[S, D]) Eval4(x, y, z, w float64) float64 {
	ox := d.displacement.Eval4(x, y, z, w)
	oy := d.displacement.Eval4(y, z, w, x)
	oz := d.displacement.Eval4(z, w, x, y)
	ow := d.displacement.Eval4(w, x, y, z)
	k := d.strength
	return d.source.Eval4(x+k*ox, y+k*oy, z+k*oz, w+k*ow)
}

// AmplitudeScaled scales the output only; the displacement is unchanged.
func (d DistortedNoise[S, D]) AmplitudeScaled(factor float64) DistortedNoise[S, D] {
	d.source = d.source.AmplitudeScaled(factor)
	return d
}

// FrequencyScaled scales the domain of the whole distorted field. Both fields
// are scaled and the strength divided, so offsets stay proportional.
func (d DistortedNoise[S, D]) FrequencyScaled(factor float64) DistortedNoise[S, D] {
	checkFrequency(factor)
	d.source = d.source.FrequencyScaled(factor)
	d.displacement = d.displacement.FrequencyScaled(factor)
	d.strength /= factor
	return d
}

func (d DistortedNoise[S, D]) Reseeded() DistortedNoise[S, D] {
	d.source = d.source.Reseeded()
	d.displacement = d.displacement.Reseeded()
	return d
}
