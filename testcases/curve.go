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

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Points: pts(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: pixel.Bezier},
	},
	{
		Name:   "cubic",
		Points: pts(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: pixel.Bezier},
	},
	{
		Name:   "s_curve",
		Points: pts(8, 32, 20, 0, 44, 64, 56, 32),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: pixel.Bezier},
	},
	{
		Name:   "high_degree",
		Points: zigzag(4, 32, 60, 24, 7),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: pixel.Bezier},
	},
	{
		Name:   "straight",
		Points: pts(4, 4, 60, 30),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: pixel.Bezier},
	},
	{
		Name:   "bspline_cubic",
		Points: pts(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: pixel.BSpline},
	},
	{
		Name:   "bspline_zigzag",
		Points: zigzag(4, 32, 60, 24, 9),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: pixel.BSpline},
	},
	{
		Name:   "bspline_closed_loop",
		Points: pts(16, 16, 48, 16, 48, 48, 16, 48, 16, 16, 48, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: pixel.BSpline},
	},
}

// zigzag builds n control points alternating above and below cy.
func zigzag(x1, cy, x2, amplitude, n int) []pixel.Point {
	res := make([]pixel.Point, n)
	for i := range n {
		x := x1 + i*(x2-x1)/(n-1)
		y := cy + amplitude
		if i%2 == 1 {
			y = cy - amplitude
		}
		res[i] = pixel.Pt(x, y)
	}
	return res
}
