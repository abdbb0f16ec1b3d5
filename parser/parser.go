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

// Package parser reads big-endian values from the binary data of an sfnt
// font file.
//
// The reading is done by [seehuhn.de/go/sfnt/parser]; this package adds
// range checks on every seek and reports truncated data as
// [InvalidFontError].
package parser

import (
	"fmt"
	"io"

	sfntparser "seehuhn.de/go/sfnt/parser"
)

// InvalidFontError is returned when the font data is malformed.
type InvalidFontError = sfntparser.InvalidFontError

// maxChunk is the largest read the underlying parser supports at once.
const maxChunk = 1024

// Parser reads big-endian values from a font file.
// The zero value is not usable; use [New] to create a Parser.
type Parser struct {
	*sfntparser.Parser
}

// New allocates a new Parser, positioned at the start of r.
func New(r io.ReadSeeker) (*Parser, error) {
	rs, ok := r.(sfntparser.ReadSeekSizer)
	if !ok {
		size, err := r.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, err
		}
		rs = &sizedReader{ReadSeeker: r, size: size}
	}
	_, err := r.Seek(0, io.SeekStart)
	if err != nil {
		return nil, err
	}
	return &Parser{Parser: sfntparser.New(rs)}, nil
}

// sizedReader adds the Size method to readers like *os.File.
type sizedReader struct {
	io.ReadSeeker
	size int64
}

func (r *sizedReader) Size() int64 {
	return r.size
}

// SeekPos moves the read position to pos, counted from the start of the
// file.
func (p *Parser) SeekPos(pos int64) error {
	if pos < 0 || pos > p.Size() {
		return &InvalidFontError{
			SubSystem: "ttfraster/parser",
			Reason:    fmt.Sprintf("offset %d outside file of length %d", pos, p.Size()),
		}
	}
	return p.Parser.SeekPos(pos)
}

// Skip advances the read position by n bytes.
func (p *Parser) Skip(n int64) error {
	return p.SeekPos(p.Pos() + n)
}

// ReadBytes reads n bytes.  The returned slice is owned by the caller.
func (p *Parser) ReadBytes(n int) ([]byte, error) {
	if n < 0 || p.Pos()+int64(n) > p.Size() {
		return nil, p.truncated()
	}
	res := make([]byte, 0, n)
	for len(res) < n {
		k := min(n-len(res), maxChunk)
		buf, err := p.Parser.ReadBytes(k)
		if err != nil {
			return nil, p.truncated()
		}
		res = append(res, buf...)
	}
	return res, nil
}

// ReadUint8 reads a single byte.
func (p *Parser) ReadUint8() (uint8, error) {
	if err := p.check(1); err != nil {
		return 0, err
	}
	return p.Parser.ReadUint8()
}

// ReadUint16 reads a big-endian uint16.
func (p *Parser) ReadUint16() (uint16, error) {
	if err := p.check(2); err != nil {
		return 0, err
	}
	return p.Parser.ReadUint16()
}

// ReadInt16 reads a big-endian int16.
func (p *Parser) ReadInt16() (int16, error) {
	if err := p.check(2); err != nil {
		return 0, err
	}
	return p.Parser.ReadInt16()
}

// ReadUint32 reads a big-endian uint32.
func (p *Parser) ReadUint32() (uint32, error) {
	if err := p.check(4); err != nil {
		return 0, err
	}
	return p.Parser.ReadUint32()
}

// ReadTag reads a four byte table tag.
func (p *Parser) ReadTag() (string, error) {
	buf, err := p.ReadBytes(4)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// check makes sure that n more bytes are available.
func (p *Parser) check(n int64) error {
	if p.Pos()+n > p.Size() {
		return p.truncated()
	}
	return nil
}

func (p *Parser) truncated() error {
	return &InvalidFontError{
		SubSystem: "ttfraster/parser",
		Reason:    fmt.Sprintf("unexpected end of data at offset %d", p.Pos()),
	}
}
