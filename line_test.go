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
	"errors"
	"slices"
	"testing"
)

var allLineAlgorithms = []LineAlgorithm{Naive, DDA, Bresenham}

// isConnected reports whether consecutive pixels have Chebyshev distance
// at most 1.
func isConnected(pixels []Point) bool {
	for i := 1; i < len(pixels); i++ {
		d := pixels[i].Sub(pixels[i-1])
		if abs(d.X) > 1 || abs(d.Y) > 1 {
			return false
		}
	}
	return true
}

func count(pixels []Point, p Point) int {
	n := 0
	for _, q := range pixels {
		if q == p {
			n++
		}
	}
	return n
}

func TestDrawLineShort(t *testing.T) {
	cases := []struct {
		alg  LineAlgorithm
		want []Point
	}{
		{Naive, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 1}, {4, 1}, {5, 2}}},
		{DDA, []Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}}},
		{Bresenham, []Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}}},
	}
	for _, c := range cases {
		t.Run(c.alg.String(), func(t *testing.T) {
			got, err := DrawLine(Pt(0, 0), Pt(5, 2), c.alg)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, c.want) {
				t.Errorf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestDrawLineNaiveSwapsEndpoints(t *testing.T) {
	fwd, err := DrawLine(Pt(0, 0), Pt(5, 2), Naive)
	if err != nil {
		t.Fatal(err)
	}
	rev, err := DrawLine(Pt(5, 2), Pt(0, 0), Naive)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(fwd, rev) {
		t.Errorf("expected %v, got %v", fwd, rev)
	}
}

func TestDrawLineNaiveTruncates(t *testing.T) {
	// y = -x/3 truncated towards zero
	got, err := DrawLine(Pt(0, 0), Pt(3, -1), Naive)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{{0, 0}, {1, 0}, {2, 0}, {3, -1}}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDrawLineVertical(t *testing.T) {
	want := []Point{{3, -1}, {3, 0}, {3, 1}, {3, 2}}
	for _, alg := range allLineAlgorithms {
		for _, ends := range [][2]Point{{{3, -1}, {3, 2}}, {{3, 2}, {3, -1}}} {
			got, err := DrawLine(ends[0], ends[1], alg)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, want) {
				t.Errorf("%s %v: expected %v, got %v", alg, ends, want, got)
			}
		}
	}
}

func TestDrawLineSinglePixel(t *testing.T) {
	for _, alg := range allLineAlgorithms {
		for _, p := range []Point{{0, 0}, {7, -3}, {-100, 42}} {
			got, err := DrawLine(p, p, alg)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, []Point{p}) {
				t.Errorf("%s: expected [%v], got %v", alg, p, got)
			}
		}
	}
}

// TestDrawLineProperties checks end point inclusion and connectivity for
// all segments between points of a small grid.
func TestDrawLineProperties(t *testing.T) {
	var grid []Point
	for x := -6; x <= 6; x += 2 {
		for y := -5; y <= 7; y += 3 {
			grid = append(grid, Pt(x, y))
		}
	}

	for _, p0 := range grid {
		for _, p1 := range grid {
			if p0 == p1 {
				continue
			}

			bres, err := DrawLine(p0, p1, Bresenham)
			if err != nil {
				t.Fatal(err)
			}
			if count(bres, p0) != 1 || count(bres, p1) != 1 {
				t.Errorf("Bresenham %v-%v: end points not included exactly once: %v", p0, p1, bres)
			}
			if !isConnected(bres) {
				t.Errorf("Bresenham %v-%v: not 8-connected: %v", p0, p1, bres)
			}
			d := p1.Sub(p0)
			if want := max(abs(d.X), abs(d.Y)) + 1; len(bres) != want {
				t.Errorf("Bresenham %v-%v: expected %d pixels, got %d", p0, p1, want, len(bres))
			}

			dda, err := DrawLine(p0, p1, DDA)
			if err != nil {
				t.Fatal(err)
			}
			if count(dda, p0) != 1 || count(dda, p1) != 1 {
				t.Errorf("DDA %v-%v: end points not included exactly once: %v", p0, p1, dda)
			}
			if !isConnected(dda) {
				t.Errorf("DDA %v-%v: not 8-connected: %v", p0, p1, dda)
			}

			naive, err := DrawLine(p0, p1, Naive)
			if err != nil {
				t.Fatal(err)
			}
			if count(naive, p0) != 1 || count(naive, p1) != 1 {
				t.Errorf("Naive %v-%v: end points not included exactly once: %v", p0, p1, naive)
			}
		}
	}
}

func TestDrawLineDirection(t *testing.T) {
	p0, p1 := Pt(9, 4), Pt(-3, 1)
	for _, alg := range []LineAlgorithm{DDA, Bresenham} {
		got, err := DrawLine(p0, p1, alg)
		if err != nil {
			t.Fatal(err)
		}
		if got[0] != p0 || got[len(got)-1] != p1 {
			t.Errorf("%s: expected %v ... %v, got %v", alg, p0, p1, got)
		}
	}
}

func TestDrawLineBresenhamMonotone(t *testing.T) {
	got, err := DrawLine(Pt(0, 0), Pt(5, 2), Bresenham)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].X < got[i-1].X {
			t.Errorf("x decreases at index %d: %v", i, got)
		}
	}
}

func TestDrawLineInvalidAlgorithm(t *testing.T) {
	for _, alg := range []LineAlgorithm{-1, 3, 100} {
		got, err := DrawLine(Pt(0, 0), Pt(1, 1), alg)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%d: expected ErrInvalidArgument, got %v", int(alg), err)
		}
		if got != nil {
			t.Errorf("%d: expected no pixels, got %v", int(alg), got)
		}
	}
}
