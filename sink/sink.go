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

// Package sink provides destinations for rendered glyph bitmaps.
package sink

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/bmp"

	"seehuhn.de/go/ttfraster/raster"
)

// A Sink receives the rendered glyph bitmaps.
type Sink interface {
	Save(name string, r *raster.Raster) error
}

// Func adapts an ordinary function to the Sink interface.
type Func func(name string, r *raster.Raster) error

// Save calls f(name, r).
func (f Func) Save(name string, r *raster.Raster) error {
	return f(name, r)
}

// Memory keeps all saved rasters in memory.
type Memory struct {
	mu     sync.Mutex
	names  []string
	images map[string]*raster.Raster
}

// Save stores r under the given name.  Saving a name twice is an error.
func (m *Memory) Save(name string, r *raster.Raster) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.images == nil {
		m.images = make(map[string]*raster.Raster)
	}
	if _, seen := m.images[name]; seen {
		return fmt.Errorf("duplicate image name %q", name)
	}
	m.names = append(m.names, name)
	m.images[name] = r
	return nil
}

// Names returns the names of the saved rasters, in the order they were
// saved.
func (m *Memory) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.names...)
}

// Get returns the raster saved under the given name, or nil.
func (m *Memory) Get(name string) *raster.Raster {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.images[name]
}

// Len returns the number of saved rasters.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.names)
}

// Image file formats supported by [Dir].
const (
	FormatBMP = "bmp"
	FormatPNG = "png"
)

// Dir writes every raster to an image file in a directory.
type Dir struct {
	// Path is the output directory.  It must exist.
	Path string

	// Format is either [FormatBMP] or [FormatPNG].
	// The empty string selects BMP.
	Format string
}

// Save writes r to the file <Path>/<name>.<Format>.
//
// BMP files use 32 bits per pixel with an alpha channel whenever the raster
// contains non-opaque pixels, which is the case for every glyph bitmap with
// background.  A raster where every pixel is opaque is written with 24 bits
// per pixel; the colours are the same.
func (d Dir) Save(name string, r *raster.Raster) error {
	format := d.Format
	if format == "" {
		format = FormatBMP
	}
	if format != FormatBMP && format != FormatPNG {
		return fmt.Errorf("unsupported image format %q", d.Format)
	}

	fname := filepath.Join(d.Path, name+"."+format)
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}

	img := r.Image()
	switch format {
	case FormatPNG:
		err = png.Encode(fd, img)
	default:
		err = bmp.Encode(fd, img)
	}
	if err != nil {
		fd.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	err = fd.Close()
	if err != nil {
		return err
	}

	tracer().Debugf("wrote %s (%dx%d)", fname, r.Width, r.Height)
	return nil
}

func tracer() tracing.Trace {
	return tracing.Select("ttfraster")
}
