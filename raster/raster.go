// seehuhn.de/go/ttfraster - rasterize the outlines of TrueType fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster draws glyph outlines into 32-bit pixel buffers.
//
// Pixels are stored as 0xAARRGGBB values, row by row, with row 0 at the
// top.  The pixel (x, y) covers the unit square [x, x+1] × [y, y+1].
package raster

import (
	"image"
)

// Raster is a rectangular buffer of pixels.
type Raster struct {
	Width, Height int
	Pix           []uint32
}

// New allocates a raster of the given size.  All pixels are zero.
func New(width, height int) *Raster {
	width = max(width, 0)
	height = max(height, 0)
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

// Set sets the colour of the pixel (x, y).  Pixels outside the raster are
// ignored.
func (r *Raster) Set(x, y int, c uint32) {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return
	}
	r.Pix[y*r.Width+x] = c
}

// At returns the colour of the pixel (x, y), or 0 for pixels outside the
// raster.
func (r *Raster) At(x, y int) uint32 {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return 0
	}
	return r.Pix[y*r.Width+x]
}

// Count returns the number of pixels which have colour c.
func (r *Raster) Count(c uint32) int {
	n := 0
	for _, p := range r.Pix {
		if p == c {
			n++
		}
	}
	return n
}

// Image converts the raster to an image.
func (r *Raster) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := r.Pix[y*r.Width+x]
			i := img.PixOffset(x, y)
			img.Pix[i] = byte(c >> 16)
			img.Pix[i+1] = byte(c >> 8)
			img.Pix[i+2] = byte(c)
			img.Pix[i+3] = byte(c >> 24)
		}
	}
	return img
}
