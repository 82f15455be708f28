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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
)

var benchSizes = []int{20, 200, 2000}

// BenchmarkDrawLine benchmarks the line algorithms on the diagonal of an
// n×n canvas with a slope of 1/3.
func BenchmarkDrawLine(b *testing.B) {
	for _, alg := range allLineAlgorithms {
		for _, size := range benchSizes {
			b.Run(fmt.Sprintf("%s/%d", alg, size), func(b *testing.B) {
				p0, p1 := Pt(0, 0), Pt(size-1, (size-1)/3)
				b.ReportAllocs()
				for b.Loop() {
					if _, err := DrawLine(p0, p1, alg); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkVectorLine benchmarks x/image/vector filling a one pixel wide
// parallelogram along the same segment as BenchmarkDrawLine.
func BenchmarkVectorLine(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			x1 := float32(size - 1)
			y1 := float32((size - 1) / 3)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(0, 0)
				r.LineTo(x1, y1)
				r.LineTo(x1, y1+1)
				r.LineTo(0, 1)
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkDrawEllipse benchmarks the circle inscribed in an n×n canvas.
func BenchmarkDrawEllipse(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			p1 := Pt(size-1, size-1)
			b.ReportAllocs()
			for b.Loop() {
				DrawEllipse(Pt(0, 0), p1)
			}
		})
	}
}

// BenchmarkVectorCircle benchmarks x/image/vector filling an annulus of
// width one pixel, approximated by cubic curves.
func BenchmarkVectorCircle(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			c := float32(size) / 2
			outer := c
			inner := c - 1

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addVectorCircle(r, c, c, outer, false)
				addVectorCircle(r, c, c, inner, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkDrawCurve benchmarks a cubic Bezier curve and a B-spline with
// the same control polygon, spanning an n×n canvas.
func BenchmarkDrawCurve(b *testing.B) {
	for _, alg := range []CurveAlgorithm{Bezier, BSpline} {
		for _, size := range benchSizes {
			b.Run(fmt.Sprintf("%s/%d", alg, size), func(b *testing.B) {
				n := size - 1
				ctrl := []Point{{0, 0}, {0, n}, {n, n}, {n, 0}}
				b.ReportAllocs()
				for b.Loop() {
					if _, err := DrawCurve(ctrl, alg); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// addVectorCircle adds a circle to the rasteriser using four cubic Bezier
// arcs.
func addVectorCircle(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = 0.5522847498
	kr := k * radius

	dir := float32(1)
	if clockwise {
		dir = -1
	}

	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx+dir*kr, cy-radius, cx+dir*radius, cy-kr, cx+dir*radius, cy)
	r.CubeTo(cx+dir*radius, cy+kr, cx+dir*kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx-dir*kr, cy+radius, cx-dir*radius, cy+kr, cx-dir*radius, cy)
	r.CubeTo(cx-dir*radius, cy-kr, cx-dir*kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}
