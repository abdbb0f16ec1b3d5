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

import (
	"math"

	"seehuhn.de/go/ttfraster/glyf"
)

// FillRule decides which pixels are inside a glyph outline.
type FillRule int

// The supported fill rules.
const (
	// NonZero fills pixels with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills pixels whose ray crosses the outline an odd number of
	// times.
	EvenOdd
)

func (rule FillRule) String() string {
	switch rule {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// Fill sets every pixel whose centre lies inside the outline to colour c.
// The contours must be given in raster coordinates.
func (r *Raster) Fill(contours []glyf.Contour, rule FillRule, c uint32) {
	var active []glyf.Curve
	for y := 0; y < r.Height; y++ {
		py := float64(y) + 0.5

		active = active[:0]
		for _, contour := range contours {
			for _, cv := range contour {
				if spansRow(cv, py) {
					active = append(active, cv)
				}
			}
		}
		if len(active) == 0 {
			continue
		}

		for x := 0; x < r.Width; x++ {
			px := float64(x) + 0.5
			winding, count := 0, 0
			for _, cv := range active {
				w, n := Crossings(cv, px, py)
				winding += w
				count += n
			}
			if rule.inside(winding, count) {
				r.Set(x, y, c)
			}
		}
	}
}

func (rule FillRule) inside(winding, count int) bool {
	if rule == EvenOdd {
		return count%2 != 0
	}
	return winding != 0
}

// Winding returns the winding number of the contours around the point
// (px, py), together with the unsigned number of crossings of the ray
// from (px, py) towards +x.
func Winding(contours []glyf.Contour, px, py float64) (winding, count int) {
	for _, contour := range contours {
		for _, cv := range contour {
			w, n := Crossings(cv, px, py)
			winding += w
			count += n
		}
	}
	return winding, count
}

// Crossings intersects the curve with the horizontal ray from (px, py)
// towards +x.  It returns the signed crossing count, +1 for each crossing
// where the curve moves towards increasing y and -1 where it moves
// towards decreasing y, and the unsigned number of crossings.
func Crossings(cv glyf.Curve, px, py float64) (winding, count int) {
	x0, x1, x2 := float64(cv.P0.X), float64(cv.P1.X), float64(cv.P2.X)
	if max(x0, x1, x2) < px {
		// The curve lies inside the convex hull of its control points,
		// so it cannot reach the ray.
		return 0, 0
	}
	if !spansRow(cv, py) {
		return 0, 0
	}

	y0, y1, y2 := float64(cv.P0.Y), float64(cv.P1.Y), float64(cv.P2.Y)
	a := y0 - 2*y1 + y2
	b := 2 * (y1 - y0)
	roots, n := QuadraticRoots(a, b, y0-py)
	for _, t := range roots[:n] {
		if t < 0 || t > 1 {
			continue
		}
		if QuadraticInterpolation(x0, x1, x2, t) <= px {
			continue
		}
		dy := 2*a*t + b
		switch {
		case dy > 0:
			winding++
			count++
		case dy < 0:
			winding--
			count++
		}
	}
	return winding, count
}

// spansRow reports whether the control points of the curve lie on both
// sides of the horizontal line at height py.
func spansRow(cv glyf.Curve, py float64) bool {
	y0, y1, y2 := float64(cv.P0.Y), float64(cv.P1.Y), float64(cv.P2.Y)
	return min(y0, y1, y2) <= py && max(y0, y1, y2) >= py
}

// QuadraticRoots returns the real solutions of a·t² + b·t + c = 0.
// If a is close to zero, the equation is solved as a linear equation.
// Double roots are returned once.
func QuadraticRoots(a, b, c float64) (roots [2]float64, n int) {
	if math.Abs(a) < epsilon {
		if math.Abs(b) < epsilon {
			return roots, 0
		}
		roots[0] = -c / b
		return roots, 1
	}

	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return roots, 0
	case disc == 0:
		roots[0] = -b / (2 * a)
		return roots, 1
	}

	// avoid cancellation between -b and the square root
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	roots[0] = q / a
	roots[1] = c / q
	if roots[0] > roots[1] {
		roots[0], roots[1] = roots[1], roots[0]
	}
	return roots, 2
}

const epsilon = 1e-9
