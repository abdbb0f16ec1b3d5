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
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

const white = 0xFFFFFFFF

// dump renders the raster as one string per row, with '#' for pixels of
// colour c and '.' for everything else.
func dump(r *Raster, c uint32) []string {
	rows := make([]string, r.Height)
	for y := range r.Height {
		var b strings.Builder
		for x := range r.Width {
			if r.At(x, y) == c {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func TestNew(t *testing.T) {
	r := New(3, 2)
	if len(r.Pix) != 6 {
		t.Fatalf("len(Pix) = %d, want 6", len(r.Pix))
	}
	for i, p := range r.Pix {
		if p != 0 {
			t.Errorf("Pix[%d] = %08x, want 0", i, p)
		}
	}

	r = New(-1, 5)
	if r.Width != 0 || len(r.Pix) != 0 {
		t.Errorf("negative width gives %dx%d", r.Width, r.Height)
	}
}

func TestSetClipping(t *testing.T) {
	r := New(4, 3)
	for _, p := range [][2]int{
		{-1, 0}, {4, 0}, {0, -1}, {0, 3},
		{-1, -1}, {4, 3},
		{5, 1}, // x out of range, y*Width+x would still be in Pix
	} {
		r.Set(p[0], p[1], white)
	}
	if n := r.Count(white); n != 0 {
		t.Errorf("%d out-of-range pixels were set", n)
	}

	r.Set(3, 2, white)
	if r.Pix[len(r.Pix)-1] != white {
		t.Error("corner pixel not set")
	}
	if r.At(-1, 0) != 0 || r.At(4, 2) != 0 {
		t.Error("At outside the raster is not zero")
	}
}

func TestDrawLine(t *testing.T) {
	r := New(5, 5)
	r.DrawLine(0, 0, 4, 4, white)
	for i := range 5 {
		if r.At(i, i) != white {
			t.Errorf("diagonal pixel (%d,%d) not set", i, i)
		}
	}
	if n := r.Count(white); n != 5 {
		t.Errorf("diagonal has %d pixels, want 5", n)
	}

	r = New(5, 5)
	r.DrawLine(4, 2, 0, 2, white)
	want := []string{
		".....",
		".....",
		"#####",
		".....",
		".....",
	}
	if d := cmp.Diff(want, dump(r, white)); d != "" {
		t.Errorf("horizontal line (-want +got):\n%s", d)
	}

	r = New(3, 3)
	r.DrawLine(1, 1, 1, 1, white)
	if r.Count(white) != 1 || r.At(1, 1) != white {
		t.Error("zero length line is not a single pixel")
	}
}

func TestDrawLineClipped(t *testing.T) {
	r := New(3, 3)
	r.DrawLine(-5, 1, 10, 1, white)
	if d := cmp.Diff([]string{"...", "###", "..."}, dump(r, white)); d != "" {
		t.Errorf("clipped line (-want +got):\n%s", d)
	}
}

func TestDrawPoint(t *testing.T) {
	r := New(4, 4)
	r.DrawPoint(0, 0, white)
	want := []string{
		"##..",
		"##..",
		"....",
		"....",
	}
	if d := cmp.Diff(want, dump(r, white)); d != "" {
		t.Errorf("point marker (-want +got):\n%s", d)
	}
}

func TestQuadraticInterpolation(t *testing.T) {
	cases := []struct {
		f0, f1, f2, t, want float64
	}{
		{0, 5, 10, 0, 0},
		{0, 5, 10, 1, 10},
		{0, 5, 10, 0.5, 5},
		{0, 10, 0, 0.5, 5},
		{2, 2, 2, 0.3, 2},
	}
	for _, c := range cases {
		got := QuadraticInterpolation(c.f0, c.f1, c.f2, c.t)
		if got != c.want {
			t.Errorf("QuadraticInterpolation(%g, %g, %g, %g) = %g, want %g",
				c.f0, c.f1, c.f2, c.t, got, c.want)
		}
	}

	p := BezierPoint(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 8}, vec.Vec2{X: 8, Y: 0}, 0.5)
	if p != (vec.Vec2{X: 4, Y: 4}) {
		t.Errorf("BezierPoint = %v, want (4, 4)", p)
	}
}

func TestDrawQuadEndpoints(t *testing.T) {
	r := New(20, 20)
	p0 := vec.Vec2{X: 1, Y: 18}
	p1 := vec.Vec2{X: 10, Y: 0}
	p2 := vec.Vec2{X: 18, Y: 18}
	r.DrawQuad(p0, p1, p2, DefaultSamples, white)

	if r.At(1, 18) != white || r.At(18, 18) != white {
		t.Error("end points of the curve are not drawn")
	}
	// the apex of the curve is at t=0.5
	apex := BezierPoint(p0, p1, p2, 0.5)
	if r.At(round(apex.X), round(apex.Y)) != white {
		t.Errorf("apex %v not drawn", apex)
	}
	if r.At(10, 0) == white {
		t.Error("control point drawn")
	}

	// every column between the end points is touched
	for x := 1; x <= 18; x++ {
		found := false
		for y := range 20 {
			if r.At(x, y) == white {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("gap in column %d", x)
		}
	}
}

func TestStrokePath(t *testing.T) {
	square := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 4, Y: 0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 4, Y: 4}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 0, Y: 4}}) &&
			yield(path.CmdClose, nil)
	}

	r := New(5, 5)
	r.StrokePath(square, DefaultSamples, white)
	want := []string{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	}
	if d := cmp.Diff(want, dump(r, white)); d != "" {
		t.Errorf("stroked square (-want +got):\n%s", d)
	}
}

func TestImage(t *testing.T) {
	r := New(2, 1)
	r.Set(0, 0, 0xFF102030)
	r.Set(1, 0, 0x80FFFFFF)
	img := r.Image()

	got := img.NRGBAAt(0, 0)
	if got != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}) {
		t.Errorf("pixel 0 = %v", got)
	}
	got = img.NRGBAAt(1, 0)
	if got != (color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x80}) {
		t.Errorf("pixel 1 = %v", got)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 1 {
		t.Errorf("bounds %v", b)
	}
}
