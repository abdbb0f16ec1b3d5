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

package loca

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/ttfraster/header"
	"seehuhn.de/go/ttfraster/internal/debug"
	"seehuhn.de/go/ttfraster/parser"
)

func TestRead(t *testing.T) {
	offs := []int{0, 20, 20, 46, 100}
	for _, format := range []int16{0, 1} {
		data := debug.Assemble(map[string][]byte{
			"head": debug.MakeHead(1000, format),
			"loca": debug.MakeLoca(offs, format),
		})
		p, err := parser.New(bytes.NewReader(data))
		if err != nil {
			t.Fatal(err)
		}
		info, err := header.Read(p)
		if err != nil {
			t.Fatal(err)
		}
		rec, err := info.Find("loca")
		if err != nil {
			t.Fatal(err)
		}

		got, err := Read(p, rec, len(offs)-1, format)
		if err != nil {
			t.Fatal(err)
		}
		want := []uint32{0, 20, 20, 46}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("format %d: offsets differ (-want +got):\n%s", format, d)
		}
	}
}

func TestReadShortTable(t *testing.T) {
	data := debug.Assemble(map[string][]byte{
		"head": debug.MakeHead(1000, 0),
		"loca": debug.MakeLoca([]int{0, 10}, 0),
	})
	p, err := parser.New(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	info, err := header.Read(p)
	if err != nil {
		t.Fatal(err)
	}
	rec, _ := info.Find("loca")

	_, err = Read(p, rec, 5, 0)
	var fontErr *parser.InvalidFontError
	if !errors.As(err, &fontErr) {
		t.Errorf("got %v, want InvalidFontError", err)
	}
	_, err = Read(p, rec, 1, 1)
	if err != nil {
		t.Errorf("one long entry fits into four bytes: %v", err)
	}
}
