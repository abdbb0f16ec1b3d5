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

package raster

import "golang.org/x/exp/constraints"

// DrawLine draws a one pixel wide line from (x0, y0) to (x1, y1), including
// both end points.
//
// The algorithm is Bresenham's, in the form given by Alois Zingl,
// http://members.chello.at/~easyfilter/bresenham.html .
func (r *Raster) DrawLine(x0, y0, x1, y1 int, c uint32) {
	dx := abs(x1 - x0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	dy := -abs(y1 - y0)
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy // error value e_xy

	for {
		r.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy { // e_xy+e_x > 0
			e += dy
			x0 += sx
		}
		if e2 <= dx { // e_xy+e_y < 0
			e += dx
			y0 += sy
		}
	}
}

// DrawPoint draws a 3×3 marker centred at (x, y).
func (r *Raster) DrawPoint(x, y int, c uint32) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			r.Set(x+dx, y+dy, c)
		}
	}
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
