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

// Package loca reads glyph offsets from the "loca" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/loca
package loca

import (
	"seehuhn.de/go/ttfraster/header"
	"seehuhn.de/go/ttfraster/parser"
)

// Read returns the start offsets of the first numGlyphs glyphs, relative to
// the start of the "glyf" table.  The final entry of the table, which marks
// the end of the glyph data, is not read.
//
// For locaFormat 0 the table stores half offsets as 16-bit values, for
// locaFormat 1 it stores 32-bit offsets.
func Read(p *parser.Parser, rec header.Record, numGlyphs int, locaFormat int16) ([]uint32, error) {
	entrySize := 2
	if locaFormat != 0 {
		entrySize = 4
	}
	if int64(numGlyphs)*int64(entrySize) > int64(rec.Length) {
		return nil, errTableTooShort
	}

	err := p.SeekPos(int64(rec.Offset))
	if err != nil {
		return nil, err
	}

	offs := make([]uint32, numGlyphs)
	for i := range offs {
		if locaFormat == 0 {
			x, err := p.ReadUint16()
			if err != nil {
				return nil, err
			}
			offs[i] = 2 * uint32(x)
		} else {
			x, err := p.ReadUint32()
			if err != nil {
				return nil, err
			}
			offs[i] = x
		}
	}
	return offs, nil
}

var errTableTooShort = &parser.InvalidFontError{
	SubSystem: "ttfraster/loca",
	Reason:    "loca table too short",
}
