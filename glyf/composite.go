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

// CompoundGlyph is the outline of a glyph which is assembled from other
// glyphs.  The component references are not decoded, compound glyphs are
// skipped when rendering.
type CompoundGlyph struct{}

func (CompoundGlyph) isOutline() {}
