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

import "fmt"

// LineAlgorithm selects how DrawLine and DrawPolygon rasterise a segment.
type LineAlgorithm int

const (
	// Naive steps along x and evaluates y from the slope at each column.
	Naive LineAlgorithm = iota

	// DDA steps along the major axis with real-valued increments.
	DDA

	// Bresenham uses the incremental integer error term.
	Bresenham
)

var lineAlgorithmNames = [...]string{
	Naive:     "Naive",
	DDA:       "DDA",
	Bresenham: "Bresenham",
}

func (a LineAlgorithm) String() string {
	if a < 0 || int(a) >= len(lineAlgorithmNames) {
		return fmt.Sprintf("LineAlgorithm(%d)", int(a))
	}
	return lineAlgorithmNames[a]
}

// ParseLineAlgorithm converts a tag such as "Bresenham" to a LineAlgorithm.
func ParseLineAlgorithm(s string) (LineAlgorithm, error) {
	for i, name := range lineAlgorithmNames {
		if name == s {
			return LineAlgorithm(i), nil
		}
	}
	return 0, invalidArgument("unknown line algorithm %q", s)
}

// CurveAlgorithm selects the curve type for DrawCurve.
type CurveAlgorithm int

const (
	// Bezier is the Bernstein-basis curve of degree n-1 through the first
	// and last of n control points.
	Bezier CurveAlgorithm = iota

	// BSpline is the uniform cubic B-spline over the control polygon.
	// The curve does not in general pass through the end points.
	BSpline
)

var curveAlgorithmNames = [...]string{
	Bezier:  "Bezier",
	BSpline: "B-spline",
}

func (a CurveAlgorithm) String() string {
	if a < 0 || int(a) >= len(curveAlgorithmNames) {
		return fmt.Sprintf("CurveAlgorithm(%d)", int(a))
	}
	return curveAlgorithmNames[a]
}

// ParseCurveAlgorithm converts "Bezier" or "B-spline" to a CurveAlgorithm.
func ParseCurveAlgorithm(s string) (CurveAlgorithm, error) {
	for i, name := range curveAlgorithmNames {
		if name == s {
			return CurveAlgorithm(i), nil
		}
	}
	return 0, invalidArgument("unknown curve algorithm %q", s)
}

// ClipAlgorithm selects the line clipping method for Clip.
type ClipAlgorithm int

const (
	// CohenSutherland clips iteratively using endpoint outcodes.
	CohenSutherland ClipAlgorithm = iota

	// LiangBarsky clips the parametric form of the segment.
	LiangBarsky
)

var clipAlgorithmNames = [...]string{
	CohenSutherland: "Cohen-Sutherland",
	LiangBarsky:     "Liang-Barsky",
}

func (a ClipAlgorithm) String() string {
	if a < 0 || int(a) >= len(clipAlgorithmNames) {
		return fmt.Sprintf("ClipAlgorithm(%d)", int(a))
	}
	return clipAlgorithmNames[a]
}

// ParseClipAlgorithm converts "Cohen-Sutherland" or "Liang-Barsky" to a
// ClipAlgorithm.
func ParseClipAlgorithm(s string) (ClipAlgorithm, error) {
	for i, name := range clipAlgorithmNames {
		if name == s {
			return ClipAlgorithm(i), nil
		}
	}
	return 0, invalidArgument("unknown clip algorithm %q", s)
}
