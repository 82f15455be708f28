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
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pixel"
)

// TestCase defines a single rasterisation scenario.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Points []pixel.Point // control vertices
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // which primitive the vertices describe
	CTM    matrix.Matrix // applied to Points first (zero-value means no transform)
}

// Operation is the primitive drawn from the control vertices.
type Operation interface {
	isOperation()
}

// Line rasterises Points[0]-Points[1].
type Line struct {
	Algorithm pixel.LineAlgorithm
}

func (Line) isOperation() {}

// Polygon rasterises the closed polygon through Points.
type Polygon struct {
	Algorithm pixel.LineAlgorithm
}

func (Polygon) isOperation() {}

// Ellipse rasterises the ellipse inscribed in the box Points[0], Points[1].
type Ellipse struct{}

func (Ellipse) isOperation() {}

// Curve rasterises the curve with control points Points.
type Curve struct {
	Algorithm pixel.CurveAlgorithm
}

func (Curve) isOperation() {}

// Vertices returns the control vertices after applying the CTM.
func (tc TestCase) Vertices() []pixel.Point {
	if tc.CTM == (matrix.Matrix{}) {
		return tc.Points
	}
	return pixel.Transform(tc.Points, tc.CTM)
}

// Rasterise computes the pixel sequence of the test case.
func (tc TestCase) Rasterise() ([]pixel.Point, error) {
	pts := tc.Vertices()
	switch op := tc.Op.(type) {
	case Line:
		if len(pts) != 2 {
			return nil, fmt.Errorf("%s: line needs 2 points, got %d", tc.Name, len(pts))
		}
		return pixel.DrawLine(pts[0], pts[1], op.Algorithm)
	case Polygon:
		return pixel.DrawPolygon(pts, op.Algorithm)
	case Ellipse:
		if len(pts) != 2 {
			return nil, fmt.Errorf("%s: ellipse needs 2 points, got %d", tc.Name, len(pts))
		}
		return pixel.DrawEllipse(pts[0], pts[1]), nil
	case Curve:
		return pixel.DrawCurve(pts, op.Algorithm)
	default:
		return nil, fmt.Errorf("%s: unsupported operation %T", tc.Name, tc.Op)
	}
}

// pts is a helper to build a vertex list from x, y pairs.
func pts(xy ...int) []pixel.Point {
	res := make([]pixel.Point, len(xy)/2)
	for i := range res {
		res[i] = pixel.Pt(xy[2*i], xy[2*i+1])
	}
	return res
}
