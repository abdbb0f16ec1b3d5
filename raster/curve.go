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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultSamples is the number of line segments used to draw one
// quadratic curve.
const DefaultSamples = 28

// QuadraticInterpolation evaluates the one-dimensional quadratic Bezier
// polynomial with control values f0, f1, f2 at t.
func QuadraticInterpolation(f0, f1, f2, t float64) float64 {
	a := f0 - 2*f1 + f2
	b := 2 * (f1 - f0)
	return a*t*t + b*t + f0
}

// BezierPoint returns the point at parameter t on the quadratic Bezier
// curve with control points p0, p1, p2.
func BezierPoint(p0, p1, p2 vec.Vec2, t float64) vec.Vec2 {
	return vec.Vec2{
		X: QuadraticInterpolation(p0.X, p1.X, p2.X, t),
		Y: QuadraticInterpolation(p0.Y, p1.Y, p2.Y, t),
	}
}

// DrawQuad draws the quadratic Bezier curve from p0 to p2 with control
// point p1, approximated by the given number of straight segments.
func (r *Raster) DrawQuad(p0, p1, p2 vec.Vec2, samples int, c uint32) {
	if samples < 1 {
		samples = DefaultSamples
	}
	prev := p0
	for i := range samples {
		t := float64(i+1) / float64(samples)
		next := BezierPoint(p0, p1, p2, t)
		r.drawSegment(prev, next, c)
		prev = next
	}
}

// StrokePath draws the outline of a path.  Curves are flattened into the
// given number of segments each.
func (r *Raster) StrokePath(p path.Path, samples int, c uint32) {
	var cur, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			cur = toVec(pts[0])
			start = cur
		case path.CmdLineTo:
			next := toVec(pts[0])
			r.drawSegment(cur, next, c)
			cur = next
		case path.CmdQuadTo:
			p1, p2 := toVec(pts[0]), toVec(pts[1])
			r.DrawQuad(cur, p1, p2, samples, c)
			cur = p2
		case path.CmdCubeTo:
			p1, p2, p3 := toVec(pts[0]), toVec(pts[1]), toVec(pts[2])
			r.drawCube(cur, p1, p2, p3, samples, c)
			cur = p3
		case path.CmdClose:
			if cur != start {
				r.drawSegment(cur, start, c)
			}
			cur = start
		}
	}
}

func (r *Raster) drawCube(p0, p1, p2, p3 vec.Vec2, samples int, c uint32) {
	if samples < 1 {
		samples = DefaultSamples
	}
	prev := p0
	for i := range samples {
		t := float64(i+1) / float64(samples)
		s := 1 - t
		next := vec.Vec2{
			X: s*s*s*p0.X + 3*s*s*t*p1.X + 3*s*t*t*p2.X + t*t*t*p3.X,
			Y: s*s*s*p0.Y + 3*s*s*t*p1.Y + 3*s*t*t*p2.Y + t*t*t*p3.Y,
		}
		r.drawSegment(prev, next, c)
		prev = next
	}
}

func (r *Raster) drawSegment(a, b vec.Vec2, c uint32) {
	r.DrawLine(round(a.X), round(a.Y), round(b.X), round(b.Y), c)
}

func round(x float64) int {
	return int(math.Round(x))
}

func toVec(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}
