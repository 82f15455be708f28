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

package canvas

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// writePDF writes the canvas as a single page PDF file, one point per
// pixel.  Horizontal runs of inked pixels become filled rectangles.
func (c *Canvas) writePDF(fname string) error {
	w, h := float64(c.Width()), float64(c.Height())
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF and canvas coordinates both have y growing upwards, so no
	// transformation is needed.
	page.SetFillColor(color.DeviceGray(0))
	empty := true
	for cmd, pts := range c.inkPath() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
			empty = false
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	if !empty {
		page.Fill()
	}

	return page.Close()
}

// inkPath returns the outline of all inked pixels, as one closed
// rectangle per horizontal run.
func (c *Canvas) inkPath() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		width := c.Width()
		for y := range c.Height() {
			x := 0
			for x < width {
				if !c.IsInk(x, y) {
					x++
					continue
				}
				start := x
				for x < width && c.IsInk(x, y) {
					x++
				}
				if !runRectangle(yield, float64(start), float64(y), float64(x), float64(y+1)) {
					return
				}
			}
		}
	}
}

// runRectangle yields a closed rectangle and reports whether the consumer
// wants more.
func runRectangle(yield func(path.Command, []vec.Vec2) bool, x1, y1, x2, y2 float64) bool {
	if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
		return false
	}
	if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y1}}) {
		return false
	}
	if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
		return false
	}
	if !yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y2}}) {
		return false
	}
	return yield(path.CmdClose, nil)
}
