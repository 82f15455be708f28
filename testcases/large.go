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

package testcases

import "seehuhn.de/go/pixel"

// largeCases use canvases of 512x512 pixels and are mainly used for
// benchmarks.
var largeCases = []TestCase{
	{
		Name:   "large_diagonal",
		Points: pts(0, 0, 511, 400),
		Width:  512,
		Height: 512,
		Op:     Line{Algorithm: pixel.Bresenham},
	},
	{
		Name:   "large_circle",
		Points: pts(6, 6, 506, 506),
		Width:  512,
		Height: 512,
		Op:     Ellipse{},
	},
	{
		Name:   "large_star",
		Points: fivePointStar(256, 256, 240),
		Width:  512,
		Height: 512,
		Op:     Polygon{Algorithm: pixel.DDA},
	},
	{
		Name:   "large_grid",
		Points: grid(8, 8, 512, 512),
		Width:  512,
		Height: 512,
		Op:     Polygon{Algorithm: pixel.Bresenham},
	},
	{
		Name:   "large_bspline",
		Points: spiral(256, 256, 20, 240, 3),
		Width:  512,
		Height: 512,
		Op:     Curve{Algorithm: pixel.BSpline},
	},
}

// grid builds a boustrophedon polygon which visits the corners of a
// rows x cols grid of cells.
func grid(rows, cols, width, height int) []pixel.Point {
	var res []pixel.Point
	for r := 0; r <= rows; r++ {
		y := r * (height - 1) / rows
		for c := 0; c <= cols; c++ {
			cc := c
			if r%2 == 1 {
				cc = cols - c
			}
			res = append(res, pixel.Pt(cc*(width-1)/cols, y))
		}
	}
	return res
}
