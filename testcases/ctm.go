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

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pixel"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Points: rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Op:     Polygon{Algorithm: pixel.Bresenham},
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_half",
		Points: rectangle(0, 0, 80, 80),
		Width:  64,
		Height: 64,
		Op:     Polygon{Algorithm: pixel.Bresenham},
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name:   "rotate_45deg",
		Points: rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		Op:     Polygon{Algorithm: pixel.Bresenham},
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "rotate_30deg_dda",
		Points: rectangle(-20, -10, 20, 10),
		Width:  64,
		Height: 64,
		Op:     Polygon{Algorithm: pixel.DDA},
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:   "rotate_line",
		Points: pts(-25, 0, 25, 0),
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: pixel.Bresenham},
		CTM:    matrix.RotateDeg(20).Translate(32, 32),
	},
	{
		Name:   "scaled_curve",
		Points: pts(0, 20, 5, 0, 15, 0, 20, 20),
		Width:  64,
		Height: 64,
		Op:     Curve{Algorithm: pixel.Bezier},
		CTM:    matrix.Scale(2.5, 2.5).Translate(7, 7),
	},
	{
		Name:   "translated_ellipse",
		Points: pts(-20, -12, 20, 12),
		Width:  64,
		Height: 64,
		Op:     Ellipse{},
		CTM:    matrix.Identity.Translate(32, 32),
	},
}
