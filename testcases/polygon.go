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
	"math"

	"seehuhn.de/go/pixel"
)

var polygonCases = []TestCase{
	{
		Name:   "triangle_bresenham",
		Points: triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Polygon{Algorithm: pixel.Bresenham},
	},
	{
		Name:   "triangle_dda",
		Points: triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Polygon{Algorithm: pixel.DDA},
	},
	{
		Name:   "star_bresenham",
		Points: fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Polygon{Algorithm: pixel.Bresenham},
	},
	{
		Name:   "star_dda",
		Points: fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Polygon{Algorithm: pixel.DDA},
	},
	{
		Name:   "rectangle",
		Points: rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Polygon{Algorithm: pixel.Bresenham},
	},
	{
		Name:   "spiral",
		Points: spiral(32, 32, 4, 28, 2),
		Width:  64,
		Height: 64,
		Op:     Polygon{Algorithm: pixel.Bresenham},
	},
	{
		Name:   "two_vertices",
		Points: pts(10, 10, 50, 40),
		Width:  64,
		Height: 64,
		Op:     Polygon{Algorithm: pixel.DDA},
	},
}

func triangle(x1, y1, x2, y2, x3, y3 int) []pixel.Point {
	return pts(x1, y1, x2, y2, x3, y3)
}

// fivePointStar builds a five-pointed star (self-intersecting), connecting
// every second point of a regular pentagon.
func fivePointStar(cx, cy, r float64) []pixel.Point {
	corners := make([]pixel.Point, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		corners[i] = pixel.Pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))))
	}

	order := []int{0, 2, 4, 1, 3}
	res := make([]pixel.Point, len(order))
	for i, j := range order {
		res[i] = corners[j]
	}
	return res
}

func rectangle(x1, y1, x2, y2 int) []pixel.Point {
	return pts(x1, y1, x2, y1, x2, y2, x1, y2)
}

// spiral builds an Archimedean spiral with 16 vertices per turn.
func spiral(cx, cy, rMin, rMax float64, turns float64) []pixel.Point {
	steps := int(turns * 16)
	totalAngle := turns * 2 * math.Pi
	rGrowth := (rMax - rMin) / totalAngle

	res := make([]pixel.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		angle := float64(i) / float64(steps) * totalAngle
		r := rMin + rGrowth*angle
		res = append(res, pixel.Pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle)))))
	}
	return res
}
