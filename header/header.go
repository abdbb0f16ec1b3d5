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

// Package header reads the table directory at the start of an sfnt file.
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff#table-directory
package header

import (
	"fmt"

	"seehuhn.de/go/ttfraster/parser"
)

// Scaler types which can appear at the start of an sfnt file.
const (
	ScalerTypeTrueType = 0x00010000
	ScalerTypeCFF      = 0x4F54544F // "OTTO"
	ScalerTypeApple    = 0x74727565 // "true"
)

// Record gives the location of one table inside the font file.
type Record struct {
	Offset uint32
	Length uint32
}

// Info contains the table directory of an sfnt font file.
type Info struct {
	ScalerType uint32
	Toc        map[string]Record
}

// Read reads the table directory from the start of the font file.
// Only fonts with TrueType outlines are accepted.
func Read(p *parser.Parser) (*Info, error) {
	err := p.SeekPos(0)
	if err != nil {
		return nil, err
	}

	scalerType, err := p.ReadUint32()
	if err != nil {
		return nil, err
	}
	switch scalerType {
	case ScalerTypeTrueType, ScalerTypeApple:
		// pass
	case ScalerTypeCFF:
		return nil, &parser.InvalidFontError{
			SubSystem: "ttfraster/header",
			Reason:    "CFF outlines are not supported",
		}
	default:
		return nil, &parser.InvalidFontError{
			SubSystem: "ttfraster/header",
			Reason:    fmt.Sprintf("unknown scaler type 0x%08x", scalerType),
		}
	}

	numTables, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	err = p.Skip(6) // searchRange, entrySelector, rangeShift
	if err != nil {
		return nil, err
	}

	info := &Info{
		ScalerType: scalerType,
		Toc:        make(map[string]Record, numTables),
	}
	for i := 0; i < int(numTables); i++ {
		tag, err := p.ReadTag()
		if err != nil {
			return nil, err
		}
		err = p.Skip(4) // checksum
		if err != nil {
			return nil, err
		}
		offset, err := p.ReadUint32()
		if err != nil {
			return nil, err
		}
		length, err := p.ReadUint32()
		if err != nil {
			return nil, err
		}
		if int64(offset)+int64(length) > p.Size() {
			return nil, &parser.InvalidFontError{
				SubSystem: "ttfraster/header",
				Reason:    fmt.Sprintf("table %q extends beyond the end of the file", tag),
			}
		}
		info.Toc[tag] = Record{Offset: offset, Length: length}
	}

	return info, nil
}

// Find returns the location of the table with the given tag.
// A missing table is reported as an [parser.InvalidFontError].
func (info *Info) Find(tag string) (Record, error) {
	rec, ok := info.Toc[tag]
	if !ok {
		return Record{}, &parser.InvalidFontError{
			SubSystem: "ttfraster/header",
			Reason:    fmt.Sprintf("missing %q table", tag),
		}
	}
	return rec, nil
}

// Has returns true if the font contains a table with the given tag.
func (info *Info) Has(tag string) bool {
	_, ok := info.Toc[tag]
	return ok
}
