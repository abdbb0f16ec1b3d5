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

package maxp

import (
	"bytes"
	"testing"

	"seehuhn.de/go/ttfraster/header"
	"seehuhn.de/go/ttfraster/internal/debug"
	"seehuhn.de/go/ttfraster/parser"
)

func TestRead(t *testing.T) {
	for _, n := range []int{0, 1, 17, 65535} {
		data := debug.Assemble(map[string][]byte{
			"head": debug.MakeHead(1000, 0),
			"maxp": debug.MakeMaxp(n),
		})
		p, err := parser.New(bytes.NewReader(data))
		if err != nil {
			t.Fatal(err)
		}
		info, err := header.Read(p)
		if err != nil {
			t.Fatal(err)
		}
		rec, _ := info.Find("maxp")
		got, err := Read(p, rec)
		if err != nil {
			t.Fatal(err)
		}
		if got != n {
			t.Errorf("NumGlyphs = %d, want %d", got, n)
		}
	}
}
