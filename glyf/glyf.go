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

// Package glyf reads glyph outlines from the "glyf" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf
package glyf

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/ttfraster/parser"
)

// Glyph represents a single glyph in a TrueType font.
// The embedded rectangle is the bounding box from the glyph header,
// in font design units.
type Glyph struct {
	funit.Rect16

	// NumContours is the contour count from the glyph header.
	// A negative value indicates a compound glyph.
	NumContours int16

	Outline Outline
}

// Outline is the decoded shape of a glyph.
// This is either SimpleGlyph or CompoundGlyph.
type Outline interface {
	isOutline()
}

// Read decodes the glyph stored at pos in the font file.  The length is the
// size of the glyph data, as given by the "loca" table.  Glyphs of length
// zero have no outline.
func Read(p *parser.Parser, pos, length int64) (*Glyph, error) {
	if length == 0 {
		return &Glyph{Outline: SimpleGlyph{}}, nil
	} else if length < 10 {
		return nil, errIncompleteHeader
	}

	err := p.SeekPos(pos)
	if err != nil {
		return nil, err
	}

	var hdr [5]int16
	for i := range hdr {
		hdr[i], err = p.ReadInt16()
		if err != nil {
			return nil, err
		}
	}
	g := &Glyph{
		Rect16: funit.Rect16{
			LLx: funit.Int16(hdr[1]),
			LLy: funit.Int16(hdr[2]),
			URx: funit.Int16(hdr[3]),
			URy: funit.Int16(hdr[4]),
		},
		NumContours: hdr[0],
	}
	if g.LLx > g.URx || g.LLy > g.URy {
		return nil, &parser.InvalidFontError{
			SubSystem: "ttfraster/glyf",
			Reason:    fmt.Sprintf("invalid bounding box %v", g.Rect16),
		}
	}

	if g.NumContours < 0 {
		tracer().Debugf("compound glyph at offset %d", pos)
		g.Outline = CompoundGlyph{}
		return g, nil
	}

	simple, err := readSimple(p, int(g.NumContours), g.LLx, g.LLy)
	if err != nil {
		return nil, err
	}
	if p.Pos() > pos+length {
		return nil, &parser.InvalidFontError{
			SubSystem: "ttfraster/glyf",
			Reason:    fmt.Sprintf("glyph data overruns its %d byte slot", length),
		}
	}
	g.Outline = simple
	return g, nil
}

// IsSimple returns true if the glyph outline is given by contours.
func (g *Glyph) IsSimple() bool {
	_, ok := g.Outline.(SimpleGlyph)
	return ok
}

// IsEmpty returns true if the glyph has no contours to draw.
func (g *Glyph) IsEmpty() bool {
	s, ok := g.Outline.(SimpleGlyph)
	return !ok || len(s.Contours) == 0
}

// Width returns the number of pixel columns covered by the bounding box,
// at one pixel per font design unit.
func (g *Glyph) Width() int {
	return int(g.URx) - int(g.LLx) + 1
}

// Height returns the number of pixel rows covered by the bounding box,
// at one pixel per font design unit.
func (g *Glyph) Height() int {
	return int(g.URy) - int(g.LLy) + 1
}

// tracer writes to trace with key 'ttfraster'
func tracer() tracing.Trace {
	return tracing.Select("ttfraster")
}

var errIncompleteHeader = &parser.InvalidFontError{
	SubSystem: "ttfraster/glyf",
	Reason:    "incomplete glyph header",
}
