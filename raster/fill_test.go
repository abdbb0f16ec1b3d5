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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/ttfraster/glyf"
)

// polygon returns a closed contour of straight segments through the given
// on-curve points.
func polygon(xy ...int) glyf.Contour {
	var points []glyf.Point
	for i := 0; i+1 < len(xy); i += 2 {
		points = append(points, glyf.Point{
			X:       xy[i],
			Y:       xy[i+1],
			OnCurve: true,
			Index:   float64(i / 2),
		})
	}
	return glyf.MakeContour(points)
}

func TestQuadraticRoots(t *testing.T) {
	cases := []struct {
		a, b, c float64
		want    []float64
	}{
		{1, 0, -1, []float64{-1, 1}},
		{1, -3, 2, []float64{1, 2}},
		{1, 0, 1, nil},
		{1, -2, 1, []float64{1}},
		{0, 2, -1, []float64{0.5}},
		{1e-12, 2, -1, []float64{0.5}},
		{0, 0, 1, nil},
		{0, 0, 0, nil},
		{2, 4, 0, []float64{-2, 0}},
	}
	for _, c := range cases {
		roots, n := QuadraticRoots(c.a, c.b, c.c)
		var got []float64
		if n > 0 {
			got = roots[:n]
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("QuadraticRoots(%g, %g, %g) (-want +got):\n%s",
				c.a, c.b, c.c, d)
		}
	}
}

func TestCrossings(t *testing.T) {
	up := glyf.Curve{
		P0: glyf.Point{X: 5, Y: 0, OnCurve: true},
		P1: glyf.Point{X: 5, Y: 5},
		P2: glyf.Point{X: 5, Y: 10, OnCurve: true},
	}
	down := glyf.Curve{P0: up.P2, P1: up.P1, P2: up.P0}
	bulge := glyf.Curve{
		P0: glyf.Point{X: 0, Y: 0, OnCurve: true},
		P1: glyf.Point{X: 10, Y: 5},
		P2: glyf.Point{X: 0, Y: 10, OnCurve: true},
	}
	arch := glyf.Curve{
		P0: glyf.Point{X: 0, Y: 10, OnCurve: true},
		P1: glyf.Point{X: 5, Y: 0},
		P2: glyf.Point{X: 10, Y: 10, OnCurve: true},
	}

	cases := []struct {
		name      string
		cv        glyf.Curve
		px, py    float64
		winding   int
		crossings int
	}{
		{"up, left of curve", up, 2.5, 4.5, 1, 1},
		{"down, left of curve", down, 2.5, 4.5, -1, 1},
		{"right of curve", up, 7.5, 4.5, 0, 0},
		{"above curve", up, 2.5, 10.5, 0, 0},
		{"below curve", up, 2.5, -0.5, 0, 0},
		{"inside bulge", bulge, 2.5, 5.5, 1, 1},
		{"right of bulge apex", bulge, 5.5, 5.5, 0, 0},
		{"left of arch, two crossings", arch, -1.5, 7.5, 0, 2},
		{"inside arch", arch, 5.5, 7.5, 1, 1},
		{"under arch", arch, 5.5, 2.5, 0, 0},
	}
	for _, c := range cases {
		w, n := Crossings(c.cv, c.px, c.py)
		if w != c.winding || n != c.crossings {
			t.Errorf("%s: Crossings() = %d, %d, want %d, %d",
				c.name, w, n, c.winding, c.crossings)
		}
	}
}

func TestFillTriangle(t *testing.T) {
	r := New(11, 11)
	r.Fill([]glyf.Contour{polygon(0, 0, 10, 0, 5, 10)}, NonZero, white)

	want := []string{
		"##########.",
		".########..",
		".########..",
		"..######...",
		"..######...",
		"...####....",
		"...####....",
		"....##.....",
		"....##.....",
		"...........",
		"...........",
	}
	if d := cmp.Diff(want, dump(r, white)); d != "" {
		t.Errorf("filled triangle (-want +got):\n%s", d)
	}
}

func TestFillHole(t *testing.T) {
	outer := polygon(0, 0, 10, 0, 10, 10, 0, 10)
	inner := polygon(3, 3, 3, 7, 7, 7, 7, 3)
	contours := []glyf.Contour{outer, inner}

	want := []string{
		"##########.",
		"##########.",
		"##########.",
		"###....###.",
		"###....###.",
		"###....###.",
		"###....###.",
		"##########.",
		"##########.",
		"##########.",
		"...........",
	}
	for _, rule := range []FillRule{NonZero, EvenOdd} {
		r := New(11, 11)
		r.Fill(contours, rule, white)
		if d := cmp.Diff(want, dump(r, white)); d != "" {
			t.Errorf("%s: ring (-want +got):\n%s", rule, d)
		}
	}

	if w, _ := Winding(contours, 5, 5); w != 0 {
		t.Errorf("winding number in the hole is %d", w)
	}
	if w, _ := Winding(contours, 1.5, 5); w == 0 {
		t.Error("winding number in the ring is zero")
	}
}

func TestFillRules(t *testing.T) {
	contours := []glyf.Contour{
		polygon(0, 0, 6, 0, 6, 6, 0, 6),
		polygon(3, 3, 9, 3, 9, 9, 3, 9),
	}

	r := New(10, 10)
	r.Fill(contours, NonZero, white)
	wantNonZero := []string{
		"######....",
		"######....",
		"######....",
		"#########.",
		"#########.",
		"#########.",
		"...######.",
		"...######.",
		"...######.",
		"..........",
	}
	if d := cmp.Diff(wantNonZero, dump(r, white)); d != "" {
		t.Errorf("nonzero (-want +got):\n%s", d)
	}

	r = New(10, 10)
	r.Fill(contours, EvenOdd, white)
	wantEvenOdd := []string{
		"######....",
		"######....",
		"######....",
		"###...###.",
		"###...###.",
		"###...###.",
		"...######.",
		"...######.",
		"...######.",
		"..........",
	}
	if d := cmp.Diff(wantEvenOdd, dump(r, white)); d != "" {
		t.Errorf("even-odd (-want +got):\n%s", d)
	}
}

func TestFillAllOffCurve(t *testing.T) {
	// four off-curve points give a round shape
	points := []glyf.Point{
		{X: 0, Y: 0, Index: 0},
		{X: 20, Y: 0, Index: 1},
		{X: 20, Y: 20, Index: 2},
		{X: 0, Y: 20, Index: 3},
	}
	c := glyf.MakeContour(points)
	if len(c) != 4 {
		t.Fatalf("got %d curves, want 4", len(c))
	}

	r := New(21, 21)
	r.Fill([]glyf.Contour{c}, NonZero, white)
	if r.At(10, 10) != white {
		t.Error("centre not filled")
	}
	for _, p := range [][2]int{{0, 0}, {20, 0}, {0, 20}, {20, 20}} {
		if r.At(p[0], p[1]) == white {
			t.Errorf("corner %v filled", p)
		}
	}
}

func TestFillClipped(t *testing.T) {
	r := New(4, 4)
	r.Fill([]glyf.Contour{polygon(-10, -10, 20, -10, 20, 20, -10, 20)}, NonZero, white)
	if n := r.Count(white); n != 16 {
		t.Errorf("%d pixels filled, want 16", n)
	}
}

func TestFillRuleString(t *testing.T) {
	if NonZero.String() != "nonzero" || EvenOdd.String() != "evenodd" {
		t.Errorf("unexpected names %q, %q", NonZero, EvenOdd)
	}
}
