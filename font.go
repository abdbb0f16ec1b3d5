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

// Package ttfraster renders the outlines of TrueType fonts into bitmaps.
//
// Every simple glyph of a font is drawn at one pixel per font design unit:
// the outline is traced with straight line segments and the interior is
// filled by casting a ray from each pixel centre.  The resulting images are
// handed to a [sink.Sink], by default one BMP file per glyph.
package ttfraster

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"

	"seehuhn.de/go/ttfraster/glyf"
	"seehuhn.de/go/ttfraster/head"
	"seehuhn.de/go/ttfraster/header"
	"seehuhn.de/go/ttfraster/loca"
	"seehuhn.de/go/ttfraster/maxp"
	"seehuhn.de/go/ttfraster/parser"
)

// Font gives access to the glyph outlines of a TrueType font.
type Font struct {
	ScalerType uint32
	Toc        map[string]header.Record

	NumGlyphs  int
	UnitsPerEm uint16
	LocaFormat int16 // 0 for short offsets, 1 for long offsets

	// Offsets holds the start of each glyph, relative to the start of the
	// "glyf" table.
	Offsets []uint32

	p    *parser.Parser
	glyf header.Record
}

// ReadFile reads a TrueType font from a file.
func ReadFile(fname string) (*Font, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	font, err := Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return font, nil
}

// Read reads the table directory and the glyph locations of a TrueType
// font.  The glyph outlines are decoded on demand by [Font.Glyph], so r
// must stay valid while the font is in use.
func Read(r io.ReadSeeker) (*Font, error) {
	p, err := parser.New(r)
	if err != nil {
		return nil, err
	}

	info, err := header.Read(p)
	if err != nil {
		return nil, fmt.Errorf("table directory: %w", err)
	}
	font := &Font{
		ScalerType: info.ScalerType,
		Toc:        info.Toc,
		p:          p,
	}

	rec, err := info.Find("maxp")
	if err != nil {
		return nil, err
	}
	font.NumGlyphs, err = maxp.Read(p, rec)
	if err != nil {
		return nil, fmt.Errorf("maxp: %w", err)
	}

	rec, err = info.Find("head")
	if err != nil {
		return nil, err
	}
	headInfo, err := head.Read(p, rec)
	if err != nil {
		return nil, fmt.Errorf("head: %w", err)
	}
	font.UnitsPerEm = headInfo.UnitsPerEm
	font.LocaFormat = headInfo.LocaFormat

	font.glyf, err = info.Find("glyf")
	if err != nil {
		return nil, err
	}

	rec, err = info.Find("loca")
	if err != nil {
		return nil, err
	}
	font.Offsets, err = loca.Read(p, rec, font.NumGlyphs, font.LocaFormat)
	if err != nil {
		return nil, fmt.Errorf("loca: %w", err)
	}
	for gid, offs := range font.Offsets {
		if offs > font.glyf.Length {
			return nil, &parser.InvalidFontError{
				SubSystem: "ttfraster",
				Reason: fmt.Sprintf("glyph %d starts at offset %d, after the end of the glyf table",
					gid, offs),
			}
		}
	}

	tracer().Debugf("read font: %d glyphs, %d units per em, loca format %d",
		font.NumGlyphs, font.UnitsPerEm, font.LocaFormat)
	return font, nil
}

// Glyph decodes the outline of a single glyph.
//
// The glyph data ends where the next glyph starts.  For the last glyph it
// ends at the end of the "glyf" table.
func (f *Font) Glyph(gid int) (*glyf.Glyph, error) {
	if gid < 0 || gid >= f.NumGlyphs {
		return nil, fmt.Errorf("glyph %d: index out of range [0, %d)", gid, f.NumGlyphs)
	}

	start := f.Offsets[gid]
	end := f.glyf.Length
	if gid+1 < f.NumGlyphs {
		end = f.Offsets[gid+1]
	}
	if end < start {
		return nil, fmt.Errorf("glyph %d: %w", gid, &parser.InvalidFontError{
			SubSystem: "ttfraster",
			Reason:    fmt.Sprintf("glyph data ends before it starts (%d < %d)", end, start),
		})
	}

	g, err := glyf.Read(f.p, int64(f.glyf.Offset)+int64(start), int64(end-start))
	if err != nil {
		return nil, fmt.Errorf("glyph %d: %w", gid, err)
	}
	return g, nil
}

// Glyphs decodes the outlines of all glyphs in the font.
// Decoding stops at the first malformed glyph.
func (f *Font) Glyphs() ([]*glyf.Glyph, error) {
	res := make([]*glyf.Glyph, f.NumGlyphs)
	for gid := range res {
		g, err := f.Glyph(gid)
		if err != nil {
			return nil, err
		}
		res[gid] = g
	}
	return res, nil
}

// tracer writes to trace with key 'ttfraster'
func tracer() tracing.Trace {
	return tracing.Select("ttfraster")
}
