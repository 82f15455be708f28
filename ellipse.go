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

// DrawEllipse rasterises the axis-aligned ellipse inscribed in the box
// with opposite corners p0 and p1, using the midpoint algorithm.
//
// The centre and the semi-axes are computed with integer division, so
// boxes of odd width or height lose half a pixel.  The four axis extremes
// (mx±a, my) and (mx, my±b) come first.  After that, every step emits the
// four mirror images (mx±x, my±y), which makes the output symmetric about
// both axes through the centre.  If the box has zero width or height
// after halving, the result is the straight segment through the centre.
func DrawEllipse(p0, p1 Point) []Point {
	mx := (p0.X + p1.X) / 2
	my := (p0.Y + p1.Y) / 2
	a := abs(p1.X-p0.X) / 2
	b := abs(p1.Y-p0.Y) / 2

	if a == 0 || b == 0 {
		return lineBresenham(Point{X: mx - a, Y: my - b}, Point{X: mx + a, Y: my + b})
	}

	res := make([]Point, 0, 4*(a+b+2))
	emit := func(x, y int) {
		res = append(res,
			Point{X: mx + x, Y: my + y},
			Point{X: mx - x, Y: my + y},
			Point{X: mx + x, Y: my - y},
			Point{X: mx - x, Y: my - y})
	}

	a2 := float64(a) * float64(a)
	b2 := float64(b) * float64(b)

	res = append(res,
		Point{X: mx + a, Y: my},
		Point{X: mx - a, Y: my},
		Point{X: mx, Y: my + b},
		Point{X: mx, Y: my - b})

	x, y := 0, b

	// region 1: |slope| < 1, step in x
	p := b2 + a2*(0.25-float64(b))
	for b*b*x < a*a*y {
		if p < 0 {
			p += b2 * float64(2*x+3)
		} else {
			p += b2*float64(2*x+3) - a2*float64(2*y-2)
			y--
		}
		x++
		emit(x, y)
	}

	// region 2: |slope| >= 1, step in y
	bx := float64(b) * (float64(x) + 0.5)
	ay := float64(a) * float64(y-1)
	ab := float64(a) * float64(b)
	p = bx*bx + ay*ay - ab*ab
	for y > 0 {
		if p < 0 {
			p += b2*float64(2*x+2) + a2*float64(-2*y+3)
			x++
		} else {
			p += a2 * float64(-2*y+3)
		}
		y--
		emit(x, y)
	}

	// For flat ellipses region 1 can reach y == 0 before x reaches a.
	for x < a {
		x++
		emit(x, 0)
	}

	Logger().Debug("ellipse rasterised",
		"centre", Point{X: mx, Y: my}, "a", a, "b", b, "pixels", len(res))
	return res
}
