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

// Package maxp reads the glyph count from the "maxp" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/maxp
package maxp

import (
	"seehuhn.de/go/ttfraster/header"
	"seehuhn.de/go/ttfraster/parser"
)

// Read returns the number of glyphs in the font.
func Read(p *parser.Parser, rec header.Record) (int, error) {
	if rec.Length < 6 {
		return 0, errTableTooShort
	}
	err := p.SeekPos(int64(rec.Offset))
	if err != nil {
		return 0, err
	}
	err = p.Skip(4) // version
	if err != nil {
		return 0, err
	}
	numGlyphs, err := p.ReadUint16()
	if err != nil {
		return 0, err
	}
	return int(numGlyphs), nil
}

var errTableTooShort = &parser.InvalidFontError{
	SubSystem: "ttfraster/maxp",
	Reason:    "maxp table too short",
}
