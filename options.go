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

package ttfraster

import (
	"fmt"

	"seehuhn.de/go/ttfraster/glyf"
	"seehuhn.de/go/ttfraster/raster"
	"seehuhn.de/go/ttfraster/sink"
)

// Default colours, in 0xAARRGGBB format.
const (
	DefaultStrokeColor uint32 = 0xFFFFFFFF
	DefaultFillColor   uint32 = 0xFFFFFFFF
	DefaultPointColor  uint32 = 0xFFFF0000
)

// DefaultMaxGlyphs is the number of images written by [ProcessFont] if
// no limit is given.
const DefaultMaxGlyphs = 10

// DefaultMaxPixels is the largest glyph bitmap, in pixels, which is
// rendered if Options.MaxPixels is zero.  This is 64 MiB of pixel data.
const DefaultMaxPixels = 1 << 24

// Options control how glyphs are rendered and where the images go.
// A nil *Options is equivalent to the result of [DefaultOptions].
type Options struct {
	// Sink receives the rendered images.  If this is nil, the images are
	// written to OutputDir.
	Sink sink.Sink

	// OutputDir is the directory used when Sink is nil.
	// The empty string means the current directory.
	OutputDir string

	// Format is the image file format used when Sink is nil,
	// either "bmp" or "png".  The empty string selects BMP.
	Format string

	// MaxGlyphs is the maximal number of images to produce.
	// Zero means no limit.
	MaxGlyphs int

	// MaxPixels bounds the size of a single glyph bitmap.  A glyph whose
	// bounding box needs more pixels is reported as an error.
	// Zero selects [DefaultMaxPixels].
	MaxPixels int

	// Samples is the number of line segments used for every curve of the
	// outline.  Values less than 1 select [raster.DefaultSamples].
	Samples int

	// FillRule decides which pixels inside the outline are filled.
	// The default is [raster.NonZero].
	FillRule raster.FillRule

	// Outline enables drawing the glyph outline before the interior is
	// filled.
	Outline bool

	// MarkPoints draws a small square at every on-curve and off-curve
	// point of the outline.
	MarkPoints bool

	// StrokeColor is the colour of the outline, in 0xAARRGGBB format.
	StrokeColor uint32

	// FillColor is the colour of the glyph interior, in 0xAARRGGBB format.
	FillColor uint32

	// PointColor is the colour of the markers drawn by MarkPoints,
	// in 0xAARRGGBB format.
	PointColor uint32
}

// DefaultOptions returns the options used when nil is passed to
// [ProcessFont] or [Render].
func DefaultOptions() *Options {
	return &Options{
		OutputDir:   ".",
		Format:      sink.FormatBMP,
		MaxGlyphs:   DefaultMaxGlyphs,
		MaxPixels:   DefaultMaxPixels,
		Samples:     raster.DefaultSamples,
		FillRule:    raster.NonZero,
		Outline:     true,
		StrokeColor: DefaultStrokeColor,
		FillColor:   DefaultFillColor,
		PointColor:  DefaultPointColor,
	}
}

func (opt *Options) sink() sink.Sink {
	if opt.Sink != nil {
		return opt.Sink
	}
	dir := opt.OutputDir
	if dir == "" {
		dir = "."
	}
	return sink.Dir{Path: dir, Format: opt.Format}
}

// CheckSize returns an error if the bitmap for g would be larger than
// opt.MaxPixels.
func (opt *Options) CheckSize(g *glyf.Glyph) error {
	limit := opt.MaxPixels
	if limit <= 0 {
		limit = DefaultMaxPixels
	}
	w, h := g.Width(), g.Height()
	if int64(w)*int64(h) > int64(limit) {
		return fmt.Errorf("glyph bitmap %dx%d exceeds the limit of %d pixels", w, h, limit)
	}
	return nil
}
