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

import "seehuhn.de/go/geom/vec"

// lineFunc rasterises the segment from p0 to p1.
type lineFunc func(p0, p1 Point) []Point

var lineFuncs = [...]lineFunc{
	Naive:     lineNaive,
	DDA:       lineDDA,
	Bresenham: lineBresenham,
}

func (a LineAlgorithm) lineFunc() (lineFunc, error) {
	if a < 0 || int(a) >= len(lineFuncs) {
		return nil, invalidArgument("unknown line algorithm %d", int(a))
	}
	return lineFuncs[a], nil
}

// DrawLine rasterises the segment from p0 to p1.
//
// The result contains both end points and is never empty.  For p0 == p1
// the result is the single pixel p0.  Vertical segments are always
// emitted with ascending y.  The Naive algorithm emits non-vertical
// segments with ascending x, which reverses the order when p0 lies to the
// right of p1.  DDA and Bresenham emit pixels from p0 towards p1.
// Consecutive pixels of DDA and Bresenham output are 8-connected.
func DrawLine(p0, p1 Point, alg LineAlgorithm) ([]Point, error) {
	draw, err := alg.lineFunc()
	if err != nil {
		return nil, err
	}
	res := draw(p0, p1)
	Logger().Debug("line rasterised",
		"algorithm", alg, "from", p0, "to", p1, "pixels", len(res))
	return res, nil
}

// vertical returns the pixels of the vertical segment at x between y0 and
// y1 inclusive, ordered by ascending y.
func vertical(x, y0, y1 int) []Point {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	res := make([]Point, 0, y1-y0+1)
	for y := y0; y <= y1; y++ {
		res = append(res, Point{X: x, Y: y})
	}
	return res
}

func lineNaive(p0, p1 Point) []Point {
	if p0.X == p1.X {
		return vertical(p0.X, p0.Y, p1.Y)
	}
	if p0.X > p1.X {
		p0, p1 = p1, p0
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	res := make([]Point, 0, dx+1)
	for x := p0.X; x <= p1.X; x++ {
		// y0 + dy/dx*(x-x0), truncated towards zero
		y := (p0.Y*dx + dy*(x-p0.X)) / dx
		res = append(res, Point{X: x, Y: y})
	}
	return res
}

func lineDDA(p0, p1 Point) []Point {
	if p0.X == p1.X {
		return vertical(p0.X, p0.Y, p1.Y)
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	steps := max(abs(dx), abs(dy))

	// Positions are computed from the start point at every step, rather
	// than accumulated, so that the last sample is exactly p1.
	start := toVec(p0)
	inc := vec.Vec2{X: float64(dx) / float64(steps), Y: float64(dy) / float64(steps)}
	res := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		res = append(res, toPoint(start.Add(inc.Mul(float64(i)))))
	}
	return res
}

func lineBresenham(p0, p1 Point) []Point {
	if p0.X == p1.X {
		return vertical(p0.X, p0.Y, p1.Y)
	}

	dx := abs(p1.X - p0.X)
	dy := abs(p1.Y - p0.Y)
	sx := sign(p1.X - p0.X)
	sy := 1
	if p0.Y > p1.Y {
		sy = -1
	}

	err := -dy
	if dx > dy {
		err = dx
	}
	err /= 2

	x, y := p0.X, p0.Y
	res := make([]Point, 0, max(dx, dy)+1)
	for {
		res = append(res, Point{X: x, Y: y})
		if x == p1.X && y == p1.Y {
			break
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x += sx
		}
		if e2 < dy {
			err += dx
			y += sy
		}
	}
	return res
}
