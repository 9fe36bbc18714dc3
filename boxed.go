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

// Boxed holds any Noise behind one concrete type, so fields whose types are
// only known at run time can still be composed with FBM and DistortedNoise.
// A Boxed created with BoxTiling also supports Transposed.
//
// Boxing costs one dynamic call per evaluation. Prefer the concrete types
// when the composition is known at compile time.
type Boxed struct {
	impl boxedField
}

type boxedField interface {
	Field
	amplitudeScaled(factor float64) Boxed
	frequencyScaled(factor float64) Boxed
	reseeded() Boxed
	transposed(octaves int) (Boxed, bool)
}

// Box wraps n.
func Box[N Noise[N]](n N) Boxed {
	return Boxed{box[N]{n}}
}

// BoxTiling wraps a tiling n, keeping its Transposed.
func BoxTiling[N TilingNoise[N]](n N) Boxed {
	return Boxed{tilingBox[N]{n}}
}

func (b Boxed) Eval2(x, y float64) float64           { return b.impl.Eval2(x, y) }
func (b Boxed) Eval3(x, y, z float64) float64        { return b.impl.Eval3(x, y, z) }
func (b Boxed) Eval4(x, y, z, w float64) float64     { return b.impl.Eval4(x, y, z, w) }
func (b Boxed) AmplitudeScaled(factor float64) Boxed { return b.impl.amplitudeScaled(factor) }
func (b Boxed) FrequencyScaled(factor float64) Boxed { return b.impl.frequencyScaled(factor) }
func (b Boxed) Reseeded() Boxed                      { return b.impl.reseeded() }

// Tiling reports whether the boxed field supports Transposed.
func (b Boxed) Tiling() bool {
	_, ok := b.impl.transposed(0)
	return ok
}

// Transposed panics if the boxed field does not tile.
func (b Boxed) Transposed(octaves int) Boxed {
	t, ok := b.impl.transposed(octaves)
	if !ok {
		panic(Error.New("boxed field does not tile"))
	}
	return t
}

type box[N Noise[N]] struct{ n N }

func (b box[N]) Eval2(x, y float64) float64           { return b.n.Eval2(x, y) }
func (b box[N]) Eval3(x, y, z float64) float64        { return b.n.Eval3(x, y, z) }
func (b box[N]) Eval4(x, y, z, w float64) float64     { return b.n.Eval4(x, y, z, w) }
func (b box[N]) amplitudeScaled(factor float64) Boxed { return Box(b.n.AmplitudeScaled(factor)) }
func (b box[N]) frequencyScaled(factor float64) Boxed { return Box(b.n.FrequencyScaled(factor)) }
func (b box[N]) reseeded() Boxed                      { return Box(b.n.Reseeded()) }
func (b box[N]) transposed(int) (Boxed, bool)         { return Boxed{}, false }

type tilingBox[N TilingNoise[N]] struct{ n N }

func (b tilingBox[N]) Eval2(x, y float64) float64       { return b.n.Eval2(x, y) }
func (b tilingBox[N]) Eval3(x, y, z float64) float64    { return b.n.Eval3(x, y, z) }
func (b tilingBox[N]) Eval4(x, y, z, w float64) float64 { return b.n.Eval4(x, y, z, w) }
func (b tilingBox[N]) amplitudeScaled(factor float64) Boxed {
	return BoxTiling(b.n.AmplitudeScaled(factor))
}
func (b tilingBox[N]) frequencyScaled(factor float64) Boxed {
	return BoxTiling(b.n.FrequencyScaled(factor))
}
func (b tilingBox[N]) reseeded() Boxed { return BoxTiling(b.n.Reseeded()) }
func (b tilingBox[N]) transposed(octaves int) (Boxed, bool) {
	return BoxTiling(b.n.Transposed(octaves)), true
}
