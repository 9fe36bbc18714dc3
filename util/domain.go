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

package util

import "fmt"

// Domain maps a Width x Height pixel grid onto the rectangle
// [MinX, MaxX) x [MinY, MaxY) of sample space.
type Domain struct {
	MinX, MinY float64
	MaxX, MaxY float64
	Width      int
	Height     int
}

// NewPixelDomain returns a domain whose sample coordinates are the pixel
// centres of a width x height image, in pixel units.
func NewPixelDomain(width, height int) Domain {
	return Domain{
		MaxX:   float64(width),
		MaxY:   float64(height),
		Width:  width,
		Height: height,
	}
}

// Len returns the number of pixels in the domain.
func (d Domain) Len() int {
	return d.Width * d.Height
}

// At returns the sample coordinate at the centre of pixel (i, j).
func (d Domain) At(i, j int) (x, y float64) {
	x = d.MinX + (float64(i)+0.5)*(d.MaxX-d.MinX)/float64(d.Width)
	y = d.MinY + (float64(j)+0.5)*(d.MaxY-d.MinY)/float64(d.Height)
	return
}

// Iterator returns an iterator over the pixel centres in row-major order.
func (d Domain) Iterator() *DomainIterator {
	if d.Width < 0 || d.Height < 0 {
		panic(Error.New("invalid domain size %dx%d", d.Width, d.Height))
	}
	return &DomainIterator{domain: d}
}

func (d Domain) String() string {
	return fmt.Sprintf("%dx%d [%g,%g)x[%g,%g)", d.Width, d.Height, d.MinX, d.MaxX, d.MinY, d.MaxY)
}

// DomainIterator walks the pixel centres of a Domain.
type DomainIterator struct {
	domain Domain
	index  int
}

// Next returns the next pixel centre. ok is false once every pixel has been
// visited.
func (it *DomainIterator) Next() (x, y float64, ok bool) {
	if it.index >= it.domain.Len() {
		return 0, 0, false
	}
	i := it.index % it.domain.Width
	j := it.index / it.domain.Width
	it.index++
	x, y = it.domain.At(i, j)
	return x, y, true
}

// Index returns the row-major index of the next pixel.
func (it *DomainIterator) Index() int {
	return it.index
}
