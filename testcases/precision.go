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

// precisionCases exercise slopes close to the octant boundaries and
// coordinates far from the origin, where rounding decisions matter.
var precisionCases = []TestCase{
	{Name: "slope_just_below_1", Points: pts(0, 0, 63, 62), Width: 64, Height: 64, Op: Line{Algorithm: pixel.Bresenham}},
	{Name: "slope_just_above_1", Points: pts(0, 0, 62, 63), Width: 64, Height: 64, Op: Line{Algorithm: pixel.Bresenham}},
	{Name: "slope_half", Points: pts(0, 10, 62, 41), Width: 64, Height: 64, Op: Line{Algorithm: pixel.DDA}},
	{Name: "slope_third_naive", Points: pts(0, 10, 63, 31), Width: 64, Height: 64, Op: Line{Algorithm: pixel.Naive}},
	{Name: "negative_coords", Points: pts(-20, -5, 30, 40), Width: 64, Height: 64, Op: Line{Algorithm: pixel.DDA}},
	{Name: "negative_naive", Points: pts(-30, 40, 20, -7), Width: 64, Height: 64, Op: Line{Algorithm: pixel.Naive}},
	{Name: "large_offset", Points: pts(1000000, 1000000, 1000040, 1000013), Width: 64, Height: 64, Op: Line{Algorithm: pixel.Bresenham}},
	{Name: "negative_ellipse", Points: pts(-40, -10, 20, 30), Width: 64, Height: 64, Op: Ellipse{}},
}
