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

package pixel

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

// Translate returns the points shifted by (dx, dy).
func Translate(points []Point, dx, dy int) []Point {
	res := make([]Point, len(points))
	for i, p := range points {
		res[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return res
}

// Rotate returns the points rotated by deg degrees about (cx, cy).
//
// Positive angles turn clockwise in a coordinate system where y grows
// upwards: the point (1, 0) rotated by 90 degrees about the origin is
// (0, -1).  Results are rounded to the nearest pixel, with ties going
// towards positive infinity.
func Rotate(points []Point, cx, cy int, deg int) []Point {
	phi := float64(deg) * math.Pi / 180
	c := math.Cos(phi)
	s := -math.Sin(phi)
	fx, fy := float64(cx), float64(cy)
	m := matrix.Matrix{
		c, s,
		-s, c,
		fx - c*fx + s*fy, fy - s*fx - c*fy,
	}
	return Transform(points, m)
}

// Scale returns the points scaled by the factor s about (cx, cy), i.e.
// each point maps to (x*s + cx*(1-s), y*s + cy*(1-s)).  Rounding is as
// for Rotate.  A factor of 1 leaves all points unchanged.
func Scale(points []Point, cx, cy int, s float64) []Point {
	m := matrix.Scale(s, s)
	m[4] = float64(cx) * (1 - s)
	m[5] = float64(cy) * (1 - s)
	return Transform(points, m)
}

// Transform applies the affine map m to every point and rounds the result
// to the grid.  The matrix uses the row vector convention of
// seehuhn.de/go/geom/matrix: x' = m[0]x + m[2]y + m[4] and
// y' = m[1]x + m[3]y + m[5].
func Transform(points []Point, m matrix.Matrix) []Point {
	res := make([]Point, len(points))
	for i, p := range points {
		x, y := float64(p.X), float64(p.Y)
		res[i] = Point{
			X: roundHalfUp(m[0]*x + m[2]*y + m[4]),
			Y: roundHalfUp(m[1]*x + m[3]*y + m[5]),
		}
	}
	return res
}
