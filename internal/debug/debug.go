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

// Package debug builds small TrueType fonts for use in unit tests.
package debug

import (
	"bytes"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/sfnt/header"
)

// A Point is a point in a glyph outline, in font design units.
type Point struct {
	X, Y    funit.Int16
	OnCurve bool
}

// A Contour describes one closed loop of a glyph outline.
type Contour []Point

// Glyph describes one glyph of a test font.
type Glyph struct {
	Contours     []Contour
	Instructions []byte

	// Compound marks a composite glyph.  Only the glyph header and a
	// single dummy component reference are written.
	Compound bool

	// BBox overrides the bounding box computed from the contours.
	BBox *funit.Rect16
}

// Options control the layout of the generated font.
type Options struct {
	UnitsPerEm uint16
	LongLoca   bool
}

// MakeFont returns the binary data of a TrueType font containing the given
// glyphs.
func MakeFont(glyphs []Glyph, opt *Options) []byte {
	return Assemble(Tables(glyphs, opt))
}

// Tables returns the "head", "maxp", "loca" and "glyf" tables for the
// given glyphs.  Tests can modify the map before calling [Assemble].
func Tables(glyphs []Glyph, opt *Options) map[string][]byte {
	if opt == nil {
		opt = &Options{}
	}
	unitsPerEm := opt.UnitsPerEm
	if unitsPerEm == 0 {
		unitsPerEm = 1000
	}

	glyf := []byte{}
	offs := make([]int, len(glyphs)+1)
	for i, g := range glyphs {
		glyf = append(glyf, EncodeGlyph(g)...)
		offs[i+1] = len(glyf)
	}

	var locaFormat int16
	if opt.LongLoca || offs[len(glyphs)] > 2*0xFFFF {
		locaFormat = 1
	}

	return map[string][]byte{
		"head": MakeHead(unitsPerEm, locaFormat),
		"maxp": MakeMaxp(len(glyphs)),
		"loca": MakeLoca(offs, locaFormat),
		"glyf": glyf,
	}
}

// Assemble writes the table directory and the tables into an sfnt file.
func Assemble(tables map[string][]byte) []byte {
	buf := &bytes.Buffer{}
	_, err := header.Write(buf, header.ScalerTypeTrueType, tables)
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// MakeHead returns a 54 byte "head" table.
func MakeHead(unitsPerEm uint16, locaFormat int16) []byte {
	head := make([]byte, 54)
	copy(head[0:], []byte{0, 1, 0, 0})              // version 1.0
	copy(head[12:], []byte{0x5F, 0x0F, 0x3C, 0xF5}) // magic number
	head[18] = byte(unitsPerEm >> 8)
	head[19] = byte(unitsPerEm)
	head[50] = byte(locaFormat >> 8)
	head[51] = byte(locaFormat)
	return head
}

// MakeMaxp returns a version 1.0 "maxp" table.
func MakeMaxp(numGlyphs int) []byte {
	maxp := make([]byte, 32)
	copy(maxp, []byte{0, 1, 0, 0})
	maxp[4] = byte(numGlyphs >> 8)
	maxp[5] = byte(numGlyphs)
	return maxp
}

// MakeLoca encodes glyph offsets into a "loca" table.  The slice offs must
// include the final end-of-data entry.
func MakeLoca(offs []int, locaFormat int16) []byte {
	var loca []byte
	for _, o := range offs {
		if locaFormat == 0 {
			o /= 2
			loca = append(loca, byte(o>>8), byte(o))
		} else {
			loca = append(loca, byte(o>>24), byte(o>>16), byte(o>>8), byte(o))
		}
	}
	return loca
}

// EncodeGlyph returns the "glyf" table entry for g, padded to an even
// length.  Glyphs without contours are encoded as empty entries.
func EncodeGlyph(g Glyph) []byte {
	if len(g.Contours) == 0 && !g.Compound {
		return nil
	}

	bbox := g.bbox()
	numContours := int16(len(g.Contours))
	if g.Compound {
		numContours = -1
	}
	buf := []byte{
		byte(numContours >> 8), byte(numContours),
		byte(bbox.LLx >> 8), byte(bbox.LLx),
		byte(bbox.LLy >> 8), byte(bbox.LLy),
		byte(bbox.URx >> 8), byte(bbox.URx),
		byte(bbox.URy >> 8), byte(bbox.URy),
	}

	if g.Compound {
		// flags ARGS_ARE_XY_VALUES, glyph 0, offset (0, 0)
		buf = append(buf, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00)
	} else {
		buf = appendSimple(buf, g)
	}

	if len(buf)%2 != 0 {
		buf = append(buf, 0)
	}
	return buf
}

func (g Glyph) bbox() funit.Rect16 {
	if g.BBox != nil {
		return *g.BBox
	}
	var bbox funit.Rect16
	first := true
	for _, contour := range g.Contours {
		for _, pt := range contour {
			if first || pt.X < bbox.LLx {
				bbox.LLx = pt.X
			}
			if first || pt.X > bbox.URx {
				bbox.URx = pt.X
			}
			if first || pt.Y < bbox.LLy {
				bbox.LLy = pt.Y
			}
			if first || pt.Y > bbox.URy {
				bbox.URy = pt.Y
			}
			first = false
		}
	}
	return bbox
}

func appendSimple(buf []byte, g Glyph) []byte {
	var points []Point
	for _, contour := range g.Contours {
		points = append(points, contour...)
		endPt := len(points) - 1
		buf = append(buf, byte(endPt>>8), byte(endPt))
	}

	L := len(g.Instructions)
	buf = append(buf, byte(L>>8), byte(L))
	buf = append(buf, g.Instructions...)

	flags := make([]byte, len(points))
	xDeltas := make([]funit.Int16, len(points))
	yDeltas := make([]funit.Int16, len(points))
	var prevX, prevY funit.Int16
	for i, pt := range points {
		xDeltas[i] = pt.X - prevX
		yDeltas[i] = pt.Y - prevY
		prevX, prevY = pt.X, pt.Y

		if pt.OnCurve {
			flags[i] |= flagOnCurve
		}
		flags[i] |= deltaFlags(xDeltas[i], flagXShortVec, flagXSameOrPos)
		flags[i] |= deltaFlags(yDeltas[i], flagYShortVec, flagYSameOrPos)
	}

	for i := 0; i < len(flags); {
		flag := flags[i]
		run := 1
		for i+run < len(flags) && flags[i+run] == flag && run < 256 {
			run++
		}
		if run > 1 {
			buf = append(buf, flag|flagRepeat, byte(run-1))
		} else {
			buf = append(buf, flag)
		}
		i += run
	}

	buf = appendCoords(buf, flags, xDeltas, flagXShortVec, flagXSameOrPos)
	buf = appendCoords(buf, flags, yDeltas, flagYShortVec, flagYSameOrPos)
	return buf
}

func deltaFlags(d funit.Int16, short, sameOrPos byte) byte {
	switch {
	case d == 0:
		return sameOrPos
	case d > 0 && d <= 255:
		return short | sameOrPos
	case d < 0 && d >= -255:
		return short
	default:
		return 0
	}
}

func appendCoords(buf []byte, flags []byte, deltas []funit.Int16, short, sameOrPos byte) []byte {
	for i, flag := range flags {
		if flag&short != 0 {
			if flag&sameOrPos != 0 {
				buf = append(buf, byte(deltas[i]))
			} else {
				buf = append(buf, byte(-deltas[i]))
			}
		} else if flag&sameOrPos == 0 {
			buf = append(buf, byte(deltas[i]>>8), byte(deltas[i]))
		}
	}
	return buf
}

const (
	flagOnCurve    = 0x01
	flagXShortVec  = 0x02
	flagYShortVec  = 0x04
	flagRepeat     = 0x08
	flagXSameOrPos = 0x10
	flagYSameOrPos = 0x20
)
