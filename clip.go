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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ClipResult is the outcome of clipping a segment against a window.
// If Outside is true, no part of the segment lies inside the window and
// P0, P1 are zero.
type ClipResult struct {
	P0, P1  Point
	Outside bool
}

// clipFunc clips the segment p0-p1 against the window w.
type clipFunc func(p0, p1 Point, w rect.Rect) ClipResult

var clipFuncs = [...]clipFunc{
	CohenSutherland: clipCohenSutherland,
	LiangBarsky:     clipLiangBarsky,
}

// Clip trims the segment from p0 to p1 to the window spanned by
// (xMin, yMin) and (xMax, yMax).  The window includes its boundary.
// Corners given in the wrong order are swapped.  New end points on the
// window boundary are rounded to the nearest pixel.  The clipped segment
// keeps the direction of the input.
//
// A segment which misses the window is reported with Outside set.  This
// is not an error.
func Clip(p0, p1 Point, xMin, yMin, xMax, yMax int, alg ClipAlgorithm) (ClipResult, error) {
	if alg < 0 || int(alg) >= len(clipFuncs) {
		return ClipResult{}, invalidArgument("unknown clip algorithm %d", int(alg))
	}
	w := rect.Rect{
		LLx: float64(min(xMin, xMax)),
		LLy: float64(min(yMin, yMax)),
		URx: float64(max(xMin, xMax)),
		URy: float64(max(yMin, yMax)),
	}
	res := clipFuncs[alg](p0, p1, w)
	Logger().Debug("segment clipped",
		"algorithm", alg, "from", p0, "to", p1, "outside", res.Outside)
	return res, nil
}

// outcode records on which sides of the clip window a point lies.
type outcode uint8

const (
	outLeft outcode = 1 << iota
	outRight
	outBelow // y < yMin
	outAbove // y > yMax
)

// clipEps absorbs rounding errors in boundary intersections, which lie
// on the window edge in exact arithmetic.
const clipEps = 1e-9

func outcodeOf(v vec.Vec2, w rect.Rect) outcode {
	var c outcode
	if v.X < w.LLx-clipEps {
		c |= outLeft
	} else if v.X > w.URx+clipEps {
		c |= outRight
	}
	if v.Y < w.LLy-clipEps {
		c |= outBelow
	} else if v.Y > w.URy+clipEps {
		c |= outAbove
	}
	return c
}

// maxClipSteps bounds the Cohen-Sutherland loop.  Each end point needs at
// most two boundary intersections.
const maxClipSteps = 4

func clipCohenSutherland(p0, p1 Point, w rect.Rect) ClipResult {
	// The working end points stay real-valued and are rounded only once
	// the segment is accepted.  Intersections are always computed on the
	// input line.
	a := toVec(p0)
	d := toVec(p1).Sub(a)

	v0, v1 := a, toVec(p1)
	c0, c1 := outcodeOf(v0, w), outcodeOf(v1, w)
	for range maxClipSteps + 1 {
		if c0|c1 == 0 {
			return ClipResult{P0: toPoint(v0), P1: toPoint(v1)}
		}
		if c0&c1 != 0 {
			return ClipResult{Outside: true}
		}

		c := c0
		if c == 0 {
			c = c1
		}
		var q vec.Vec2
		switch {
		case c&outAbove != 0:
			q = vec.Vec2{X: a.X + d.X*(w.URy-a.Y)/d.Y, Y: w.URy}
		case c&outBelow != 0:
			q = vec.Vec2{X: a.X + d.X*(w.LLy-a.Y)/d.Y, Y: w.LLy}
		case c&outRight != 0:
			q = vec.Vec2{X: w.URx, Y: a.Y + d.Y*(w.URx-a.X)/d.X}
		default: // outLeft
			q = vec.Vec2{X: w.LLx, Y: a.Y + d.Y*(w.LLx-a.X)/d.X}
		}

		if c == c0 {
			v0, c0 = q, outcodeOf(q, w)
		} else {
			v1, c1 = q, outcodeOf(q, w)
		}
	}
	return ClipResult{Outside: true}
}

func clipLiangBarsky(p0, p1 Point, w rect.Rect) ClipResult {
	a := toVec(p0)
	d := toVec(p1).Sub(a)

	// The segment a + t*d lies inside the half-plane i iff t*p[i] <= q[i].
	p := [4]float64{-d.X, d.X, -d.Y, d.Y}
	q := [4]float64{a.X - w.LLx, w.URx - a.X, a.Y - w.LLy, w.URy - a.Y}

	tEnter, tExit := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return ClipResult{Outside: true}
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			tEnter = max(tEnter, r)
		} else {
			tExit = min(tExit, r)
		}
		if tEnter > tExit {
			return ClipResult{Outside: true}
		}
	}

	return ClipResult{
		P0: toPoint(a.Add(d.Mul(tEnter))),
		P1: toPoint(a.Add(d.Mul(tExit))),
	}
}
