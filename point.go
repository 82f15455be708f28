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

// Package pixel converts 2D primitives given by integer control vertices
// into the pixels that approximate them on an integer grid.
//
// Line segments, polygons, ellipses and curves are rasterised into pixel
// sequences: ordered lists of integer coordinates in traversal order.
// The package also provides affine transforms and line clipping on the
// same vertex representation.  All functions are pure and safe for
// concurrent use.
package pixel

import (
	"image"
	"math"

	"golang.org/x/exp/constraints"
	"seehuhn.de/go/geom/vec"
)

// Point is an integer grid coordinate.  It is used both for control
// vertices and for rasterised pixels.
type Point = image.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// toVec converts a grid point to real coordinates.
func toVec(p Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// roundHalfUp rounds to the nearest integer, with ties going towards
// positive infinity.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// toPoint rounds a real point to the nearest grid point.
func toPoint(v vec.Vec2) Point {
	return Point{X: roundHalfUp(v.X), Y: roundHalfUp(v.Y)}
}

func abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or +1.
func sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
