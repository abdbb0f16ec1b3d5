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

package glyf

import (
	"fmt"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/ttfraster/parser"
)

// SimpleGlyph is a glyph outline given by a list of closed contours.
type SimpleGlyph struct {
	Contours []Contour
}

func (SimpleGlyph) isOutline() {}

// NumCurves returns the total number of quadratic segments in the glyph.
func (g SimpleGlyph) NumCurves() int {
	n := 0
	for _, c := range g.Contours {
		n += len(c)
	}
	return n
}

// readSimple decodes the outline of a simple glyph.  The parser must be
// positioned directly after the glyph header.  Coordinates are shifted by
// (-xMin, -yMin), so that the bounding box starts at the origin.
func readSimple(p *parser.Parser, numContours int, xMin, yMin funit.Int16) (SimpleGlyph, error) {
	if numContours == 0 {
		return SimpleGlyph{}, nil
	}

	endPts := make([]int, numContours)
	maxEndPt := 0
	for i := range endPts {
		x, err := p.ReadUint16()
		if err != nil {
			return SimpleGlyph{}, err
		}
		endPts[i] = int(x)
		maxEndPt = max(maxEndPt, endPts[i])
	}

	instructionLength, err := p.ReadUint16()
	if err != nil {
		return SimpleGlyph{}, err
	}
	err = p.Skip(int64(instructionLength))
	if err != nil {
		return SimpleGlyph{}, err
	}

	numPoints := maxEndPt + 1
	flags, err := readFlags(p, numPoints)
	if err != nil {
		return SimpleGlyph{}, err
	}

	xx, err := readCoords(p, flags, flagXShortVec, flagXSameOrPos)
	if err != nil {
		return SimpleGlyph{}, err
	}
	yy, err := readCoords(p, flags, flagYShortVec, flagYSameOrPos)
	if err != nil {
		return SimpleGlyph{}, err
	}

	points := make([]Point, numPoints)
	for i, flag := range flags {
		points[i] = Point{
			X:       xx[i] - int(xMin),
			Y:       yy[i] - int(yMin),
			OnCurve: flag&flagOnCurve != 0,
			Index:   float64(i),
		}
	}

	g := SimpleGlyph{
		Contours: make([]Contour, numContours),
	}
	start := 0
	for i, end := range endPts {
		if end < start {
			return SimpleGlyph{}, &parser.InvalidFontError{
				SubSystem: "ttfraster/glyf",
				Reason:    fmt.Sprintf("contour end points not increasing (%d < %d)", end, start),
			}
		}
		g.Contours[i] = MakeContour(points[start : end+1])
		start = end + 1
	}

	tracer().Debugf("simple glyph: %d contours, %d points, %d curves",
		numContours, numPoints, g.NumCurves())
	return g, nil
}

// readFlags reads numPoints flag bytes, expanding repeated flags.
func readFlags(p *parser.Parser, numPoints int) ([]byte, error) {
	flags := make([]byte, 0, numPoints)
	for len(flags) < numPoints {
		flag, err := p.ReadUint8()
		if err != nil {
			return nil, err
		}
		flags = append(flags, flag)

		if flag&flagRepeat == 0 {
			continue
		}
		count, err := p.ReadUint8()
		if err != nil {
			return nil, err
		}
		if len(flags)+int(count) > numPoints {
			return nil, &parser.InvalidFontError{
				SubSystem: "ttfraster/glyf",
				Reason:    fmt.Sprintf("flag repeat count %d exceeds %d points", count, numPoints),
			}
		}
		for range int(count) {
			flags = append(flags, flag)
		}
	}
	return flags, nil
}

// readCoords decodes one coordinate axis.  The values are delta encoded,
// the result holds the accumulated absolute values.
func readCoords(p *parser.Parser, flags []byte, shortVec, sameOrPos byte) ([]int, error) {
	res := make([]int, len(flags))
	x := 0
	for i, flag := range flags {
		if flag&shortVec != 0 {
			dx, err := p.ReadUint8()
			if err != nil {
				return nil, err
			}
			if flag&sameOrPos != 0 {
				x += int(dx)
			} else {
				x -= int(dx)
			}
		} else if flag&sameOrPos == 0 {
			dx, err := p.ReadInt16()
			if err != nil {
				return nil, err
			}
			x += int(dx)
		}
		res[i] = x
	}
	return res, nil
}

// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf#simpleGlyphFlags
const (
	flagOnCurve    = 0x01 // ON_CURVE_POINT
	flagXShortVec  = 0x02 // X_SHORT_VECTOR
	flagYShortVec  = 0x04 // Y_SHORT_VECTOR
	flagRepeat     = 0x08 // REPEAT_FLAG
	flagXSameOrPos = 0x10 // X_IS_SAME_OR_POSITIVE_X_SHORT_VECTOR
	flagYSameOrPos = 0x20 // Y_IS_SAME_OR_POSITIVE_Y_SHORT_VECTOR
)
