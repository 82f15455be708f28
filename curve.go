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

	"seehuhn.de/go/geom/vec"
)

// curveType describes one curve type for DrawCurve.
type curveType struct {
	minPoints int
	sample    func(ctrl []vec.Vec2, emit func(vec.Vec2))
}

var curveTypes = [...]curveType{
	Bezier:  {minPoints: 2, sample: sampleBezier},
	BSpline: {minPoints: 4, sample: sampleBSpline},
}

// DrawCurve rasterises the curve defined by the control points.
//
// Bezier curves use all control points as one Bernstein polynomial of
// degree len(ctrl)-1 and need at least two points.  B-spline curves are
// uniform cubic B-splines with len(ctrl)-3 segments and need at least four
// points.  The curve is sampled densely, each sample is rounded to the
// nearest pixel, and repeated pixels are dropped.  Consecutive pixels in
// the result are 8-connected.
func DrawCurve(ctrl []Point, alg CurveAlgorithm) ([]Point, error) {
	if err := CheckCurve(ctrl, alg); err != nil {
		return nil, err
	}
	ct := curveTypes[alg]

	pts := make([]vec.Vec2, len(ctrl))
	for i, p := range ctrl {
		pts[i] = toVec(p)
	}

	var res []Point
	ct.sample(pts, func(v vec.Vec2) {
		res = appendConnected(res, toPoint(v))
	})
	Logger().Debug("curve rasterised",
		"algorithm", alg, "controlPoints", len(ctrl), "pixels", len(res))
	return res, nil
}

// CheckCurve reports whether DrawCurve accepts the algorithm and the number
// of control points, without rasterising the curve.
func CheckCurve(ctrl []Point, alg CurveAlgorithm) error {
	if alg < 0 || int(alg) >= len(curveTypes) {
		return invalidArgument("unknown curve algorithm %d", int(alg))
	}
	if n := curveTypes[alg].minPoints; len(ctrl) < n {
		return invalidArgument("%s curve needs at least %d control points, got %d",
			alg, n, len(ctrl))
	}
	return nil
}

// appendConnected appends p to the pixel sequence, unless it repeats the
// last pixel.  If p is not 8-adjacent to the last pixel, the gap is
// bridged with a Bresenham segment.
func appendConnected(res []Point, p Point) []Point {
	if len(res) == 0 {
		return append(res, p)
	}
	last := res[len(res)-1]
	if last == p {
		return res
	}
	if abs(p.X-last.X) <= 1 && abs(p.Y-last.Y) <= 1 {
		return append(res, p)
	}
	return append(res, lineBresenham(last, p)[1:]...)
}

// maxLeg returns the length of the longest leg of the control polygon.
func maxLeg(ctrl []vec.Vec2) float64 {
	var m float64
	for i := 1; i < len(ctrl); i++ {
		m = max(m, ctrl[i].Sub(ctrl[i-1]).Length())
	}
	return m
}

// sampleBezier evaluates the Bezier curve with de Casteljau's algorithm.
//
// The derivative of a degree n Bezier curve is bounded by n times the
// longest control leg, so n*maxLeg+1 uniform parameter steps keep
// consecutive samples less than one pixel apart.
func sampleBezier(ctrl []vec.Vec2, emit func(vec.Vec2)) {
	degree := len(ctrl) - 1
	n := int(math.Ceil(float64(degree)*maxLeg(ctrl))) + 1

	tmp := make([]vec.Vec2, len(ctrl))
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		copy(tmp, ctrl)
		for k := degree; k > 0; k-- {
			for j := range k {
				tmp[j] = tmp[j].Mul(1 - t).Add(tmp[j+1].Mul(t))
			}
		}
		emit(tmp[0])
	}
}

// sampleBSpline evaluates the uniform cubic B-spline segment by segment.
// Segment j uses control points j to j+3.  The derivative is bounded by
// the longest leg within the window, which fixes the number of steps.
func sampleBSpline(ctrl []vec.Vec2, emit func(vec.Vec2)) {
	for j := 0; j+3 < len(ctrl); j++ {
		p0, p1, p2, p3 := ctrl[j], ctrl[j+1], ctrl[j+2], ctrl[j+3]
		n := int(math.Ceil(maxLeg(ctrl[j:j+4]))) + 1
		for i := 0; i <= n; i++ {
			t := float64(i) / float64(n)
			t2 := t * t
			t3 := t2 * t
			omt := 1 - t

			// B(t) = ((1-t)³P0 + (3t³-6t²+4)P1 + (-3t³+3t²+3t+1)P2 + t³P3) / 6
			b0 := omt * omt * omt / 6
			b1 := (3*t3 - 6*t2 + 4) / 6
			b2 := (-3*t3 + 3*t2 + 3*t + 1) / 6
			b3 := t3 / 6
			emit(p0.Mul(b0).Add(p1.Mul(b1)).Add(p2.Mul(b2)).Add(p3.Mul(b3)))
		}
	}
}
