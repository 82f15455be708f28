// seehuhn.de/go/pixel - integer rasterisation of 2D primitives
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

// Package canvas plots pixel sequences into a monochrome image and writes
// the result as PNG, BMP, TIFF or PDF.
//
// Canvas coordinates have their origin in the lower left corner, with y
// growing upwards.  Pixels outside the canvas are ignored.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/pixel"
)

// Paper and Ink are the two gray levels of a canvas.
const (
	Paper uint8 = 255
	Ink   uint8 = 0
)

// Canvas is a monochrome raster image.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img *image.Gray
}

// New returns a blank canvas of the given size.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas size %dx%d", pixel.ErrInvalidArgument, width, height)
	}
	c := &Canvas{img: image.NewGray(image.Rect(0, 0, width, height))}
	c.Clear()
	return c, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Clear paints the whole canvas with paper colour.
func (c *Canvas) Clear() {
	for i := range c.img.Pix {
		c.img.Pix[i] = Paper
	}
}

// Plot inks the given pixels and returns how many of them were inside the
// canvas.
func (c *Canvas) Plot(pixels []pixel.Point) int {
	w, h := c.Width(), c.Height()
	n := 0
	for _, p := range pixels {
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			continue
		}
		c.img.Pix[c.offset(p.X, p.Y)] = Ink
		n++
	}
	return n
}

// IsInk reports whether the pixel at (x, y) is inked.  Pixels outside the
// canvas are never inked.
func (c *Canvas) IsInk(x, y int) bool {
	if x < 0 || x >= c.Width() || y < 0 || y >= c.Height() {
		return false
	}
	return c.img.Pix[c.offset(x, y)] == Ink
}

// offset maps canvas coordinates (y up) to the index in the image buffer
// (y down).
func (c *Canvas) offset(x, y int) int {
	row := c.Height() - 1 - y
	return row*c.img.Stride + x
}

// Image returns the canvas as an image, with the usual top-down row
// order.  The image shares memory with the canvas.
func (c *Canvas) Image() image.Image {
	return c.img
}

// Format is an output file format.
type Format int

const (
	PNG Format = iota
	BMP
	PDF
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case PDF:
		return "pdf"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts "png", "bmp", "pdf" or "tiff" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "pdf":
		return PDF, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("%w: unknown image format %q", pixel.ErrInvalidArgument, s)
}

// Encode writes the canvas to w as a PNG, BMP or TIFF image.  PDF output
// needs a file name; use Save for this.
func (c *Canvas) Encode(w io.Writer, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, c.img)
	case BMP:
		return bmp.Encode(w, c.img)
	case TIFF:
		return tiff.Encode(w, c.img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: cannot stream %s output", pixel.ErrInvalidArgument, f)
	}
}

// Save writes the canvas to the named file.  The format is chosen by the
// file name extension.
func (c *Canvas) Save(fname string) (err error) {
	f, err := ParseFormat(filepath.Ext(fname))
	if err != nil {
		return err
	}
	if f == PDF {
		err = c.writePDF(fname)
	} else {
		err = c.writeImage(fname, f)
	}
	if err != nil {
		return err
	}
	pixel.Logger().Info("canvas saved",
		"file", fname, "width", c.Width(), "height", c.Height())
	return nil
}

func (c *Canvas) writeImage(fname string, format Format) (err error) {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return c.Encode(out, format)
}

// ErrEmpty is returned by Load for images without pixels.
var ErrEmpty = errors.New("empty image")

// Load reads a PNG, BMP or TIFF file and returns a canvas in which every pixel
// darker than mid-gray is inked.
func Load(fname string) (c *Canvas, err error) {
	in, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := in.Close(); err == nil {
			err = cerr
		}
	}()

	var img image.Image
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".bmp":
		img, err = bmp.Decode(in)
	case ".tif", ".tiff":
		img, err = tiff.Decode(in)
	default:
		img, err = png.Decode(in)
	}
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmpty
	}
	c, err = New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := range bounds.Dy() {
		for x := range bounds.Dx() {
			g := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			if g.Y < 128 {
				c.img.Pix[y*c.img.Stride+x] = Ink
			}
		}
	}
	return c, nil
}
