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

// Package head reads the font resolution and the "loca" format from the
// "head" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
package head

import (
	"fmt"

	"seehuhn.de/go/ttfraster/header"
	"seehuhn.de/go/ttfraster/parser"
)

// Info contains the fields of the "head" table needed to locate glyphs.
type Info struct {
	// UnitsPerEm is the number of font design units per em.
	UnitsPerEm uint16

	// LocaFormat is 0 for 16-bit "loca" entries and 1 for 32-bit entries.
	LocaFormat int16
}

// Read decodes the "head" table at the location given by rec.
func Read(p *parser.Parser, rec header.Record) (*Info, error) {
	if rec.Length < 54 {
		return nil, &parser.InvalidFontError{
			SubSystem: "ttfraster/head",
			Reason:    "head table too short",
		}
	}
	err := p.SeekPos(int64(rec.Offset))
	if err != nil {
		return nil, err
	}

	// version, fontRevision, checksumAdjustment, magicNumber, flags
	err = p.Skip(18)
	if err != nil {
		return nil, err
	}
	unitsPerEm, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}

	// created, modified, xMin, yMin, xMax, yMax, macStyle,
	// lowestRecPPEM, fontDirectionHint
	err = p.Skip(30)
	if err != nil {
		return nil, err
	}
	locaFormat, err := p.ReadInt16()
	if err != nil {
		return nil, err
	}
	if locaFormat != 0 && locaFormat != 1 {
		return nil, &parser.InvalidFontError{
			SubSystem: "ttfraster/head",
			Reason:    fmt.Sprintf("invalid indexToLocFormat %d", locaFormat),
		}
	}

	return &Info{
		UnitsPerEm: unitsPerEm,
		LocaFormat: locaFormat,
	}, nil
}

// IsShortLoca returns true if the "loca" table uses 16-bit entries.
func (info *Info) IsShortLoca() bool {
	return info.LocaFormat == 0
}
