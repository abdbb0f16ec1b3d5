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

package ttfraster

import (
	"fmt"
	"strconv"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/ttfraster/glyf"
	"seehuhn.de/go/ttfraster/raster"
)

// Render draws a simple glyph at one pixel per font design unit.
// The raster covers the bounding box of the glyph, with the top row of the
// raster at the top of the glyph.
//
// Compound glyphs, glyphs without contours and glyphs larger than
// opt.MaxPixels are not rendered; for these the second return value is
// false.
func Render(g *glyf.Glyph, opt *Options) (*raster.Raster, bool) {
	if opt == nil {
		opt = DefaultOptions()
	}
	simple, ok := g.Outline.(glyf.SimpleGlyph)
	if !ok || len(simple.Contours) == 0 || opt.CheckSize(g) != nil {
		return nil, false
	}

	r := raster.New(g.Width(), g.Height())
	contours := make([]glyf.Contour, len(simple.Contours))
	for i, c := range simple.Contours {
		contours[i] = c.FlipY(r.Height)
	}

	if opt.Outline {
		for _, c := range contours {
			r.StrokePath(c.Path(), opt.Samples, opt.StrokeColor)
		}
	}
	if opt.MarkPoints {
		for _, c := range contours {
			for _, pt := range c.Points() {
				r.DrawPoint(pt.X, pt.Y, opt.PointColor)
			}
		}
	}
	r.Fill(contours, opt.FillRule, opt.FillColor)

	return r, true
}

// ProcessFont reads the font file at fname and renders its simple glyphs,
// in glyph index order, until opt.MaxGlyphs images have been produced.
// Each glyph is decoded directly before it is rendered.
// The images are passed to the sink under the names "0", "1", ...
// numbered in the order they are written.
//
// The function returns the number of images written.  A malformed glyph,
// or a glyph too large for opt.MaxPixels, stops processing with an error
// naming the glyph index.
func ProcessFont(fname string, opt *Options) (int, error) {
	if opt == nil {
		opt = DefaultOptions()
	}

	font, err := ReadFile(fname)
	if err != nil {
		return 0, err
	}
	return renderAll(font, opt)
}

func renderAll(font *Font, opt *Options) (int, error) {
	out := opt.sink()
	count := 0
	for gid := range font.NumGlyphs {
		if opt.MaxGlyphs > 0 && count >= opt.MaxGlyphs {
			break
		}
		g, err := font.Glyph(gid)
		if err != nil {
			return count, err
		}
		if g.IsEmpty() {
			tracer().Debugf("glyph %d: skipped (%s)", gid, describe(g))
			continue
		}
		err = opt.CheckSize(g)
		if err != nil {
			return count, fmt.Errorf("glyph %d: %w", gid, err)
		}

		r, _ := Render(g, opt)
		err = out.Save(strconv.Itoa(count), r)
		if err != nil {
			return count, err
		}
		tracer().Infof("glyph %d: %dx%d pixels, %d curves",
			gid, r.Width, r.Height, g.Outline.(glyf.SimpleGlyph).NumCurves())
		count++
	}
	return count, nil
}

func describe(g *glyf.Glyph) string {
	if !g.IsSimple() {
		return "compound"
	}
	return "empty"
}

// Path returns the outline of a simple glyph in raster coordinates, as used
// by [Render].  The second return value is false for glyphs which
// Render does not draw.
func Path(g *glyf.Glyph) (path.Path, bool) {
	simple, ok := g.Outline.(glyf.SimpleGlyph)
	if !ok || len(simple.Contours) == 0 {
		return nil, false
	}
	h := g.Height()
	flipped := glyf.SimpleGlyph{Contours: make([]glyf.Contour, len(simple.Contours))}
	for i, c := range simple.Contours {
		flipped.Contours[i] = c.FlipY(h)
	}
	return flipped.Path(), true
}
