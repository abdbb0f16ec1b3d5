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

package glyf

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// A Point is a point of a glyph outline, in glyph-local font design units.
type Point struct {
	X, Y    int
	OnCurve bool

	// Index is the number of the point in the glyph data.  Points which
	// were inserted by [ImpliedPoints] have a half-integer index, placing
	// them after the point they follow.
	Index float64
}

// A Curve is a quadratic Bezier segment.  P0 and P2 lie on the outline,
// P1 is the control point.
type Curve struct {
	P0, P1, P2 Point
}

// A Contour is a closed sequence of curves.  The end point of each curve is
// the start point of the next one, and the last curve ends at the start of
// the first.
type Contour []Curve

// MakeContour converts the points of one contour, as stored in the font
// file, into a sequence of quadratic curves.
func MakeContour(points []Point) Contour {
	return Curves(ImpliedPoints(points, FirstOnCurve(points)))
}

// FirstOnCurve returns the index of the first on-curve point.
// If there is none, len(points) is returned.
func FirstOnCurve(points []Point) int {
	for i, pt := range points {
		if pt.OnCurve {
			return i
		}
	}
	return len(points)
}

// ImpliedPoints rotates the points to start at the given offset and inserts
// the points TrueType leaves implicit.  Between two consecutive off-curve
// points a midpoint on the curve is added, and between two consecutive
// on-curve points a midpoint is added as the control point of a straight
// segment.  In the result on-curve and off-curve points alternate,
// starting with an on-curve point.
func ImpliedPoints(points []Point, offset int) []Point {
	n := len(points)
	if n == 0 {
		return nil
	}

	res := make([]Point, 0, 2*n)
	for i := range n {
		cur := points[(i+offset)%n]
		next := points[(i+offset+1)%n]
		res = append(res, cur)
		if cur.OnCurve == next.OnCurve {
			res = append(res, Point{
				X:       (cur.X + next.X) / 2,
				Y:       (cur.Y + next.Y) / 2,
				OnCurve: !cur.OnCurve,
				Index:   cur.Index + 0.5,
			})
		}
	}

	// A contour without on-curve points starts with an off-curve point;
	// the first inserted midpoint is on the curve.
	if !res[0].OnCurve {
		res = append(res[1:], res[0])
	}
	return res
}

// Curves groups an alternating list of on-curve and off-curve points,
// starting with an on-curve point, into quadratic segments.
func Curves(points []Point) Contour {
	n := len(points)
	if n == 0 {
		return nil
	}
	res := make(Contour, 0, (n+1)/2)
	for i := 0; i < n; i += 2 {
		res = append(res, Curve{
			P0: points[i],
			P1: points[(i+1)%n],
			P2: points[(i+2)%n],
		})
	}
	return res
}

// FlipY returns a copy of the contour with the y-axis reversed, so that
// y=0 maps to height-1.  This converts from font coordinates (y up) to
// raster rows (y down).
func (c Contour) FlipY(height int) Contour {
	res := make(Contour, len(c))
	for i, curve := range c {
		curve.P0.Y = height - 1 - curve.P0.Y
		curve.P1.Y = height - 1 - curve.P1.Y
		curve.P2.Y = height - 1 - curve.P2.Y
		res[i] = curve
	}
	return res
}

// Points returns the on-curve and off-curve points of the contour, in
// order, without repeating the shared end points.
func (c Contour) Points() []Point {
	res := make([]Point, 0, 2*len(c))
	for _, curve := range c {
		res = append(res, curve.P0, curve.P1)
	}
	return res
}

// Path returns the contour as a closed path of quadratic segments.
func (c Contour) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		yieldContour(c, yield)
	}
}

// Path returns a path iterating over all contours of the glyph.
func (g SimpleGlyph) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, c := range g.Contours {
			if !yieldContour(c, yield) {
				return
			}
		}
	}
}

func yieldContour(c Contour, yield func(path.Command, []vec.Vec2) bool) bool {
	if len(c) == 0 {
		return true
	}
	var buf [2]vec.Vec2
	buf[0] = toPathPoint(c[0].P0)
	if !yield(path.CmdMoveTo, buf[:1]) {
		return false
	}
	for _, curve := range c {
		buf[0] = toPathPoint(curve.P1)
		buf[1] = toPathPoint(curve.P2)
		if !yield(path.CmdQuadTo, buf[:2]) {
			return false
		}
	}
	return yield(path.CmdClose, nil)
}

func toPathPoint(p Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}
