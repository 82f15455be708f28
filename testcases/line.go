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

import "seehuhn.de/go/pixel"

var lineAlgorithms = []pixel.LineAlgorithm{pixel.Naive, pixel.DDA, pixel.Bresenham}

var lineCases = withAllAlgorithms([]TestCase{
	{Name: "horizontal", Points: pts(8, 32, 56, 32), Width: 64, Height: 64},
	{Name: "vertical_down", Points: pts(32, 8, 32, 56), Width: 64, Height: 64},
	{Name: "vertical_up", Points: pts(32, 56, 32, 8), Width: 64, Height: 64},
	{Name: "diagonal", Points: pts(8, 8, 56, 56), Width: 64, Height: 64},
	{Name: "antidiagonal", Points: pts(56, 8, 8, 56), Width: 64, Height: 64},
	{Name: "shallow", Points: pts(4, 20, 60, 34), Width: 64, Height: 64},
	{Name: "shallow_reversed", Points: pts(60, 34, 4, 20), Width: 64, Height: 64},
	{Name: "steep", Points: pts(20, 4, 34, 60), Width: 64, Height: 64},
	{Name: "steep_reversed", Points: pts(34, 60, 20, 4), Width: 64, Height: 64},
	{Name: "single_pixel", Points: pts(32, 32, 32, 32), Width: 64, Height: 64},
	{Name: "short", Points: pts(0, 0, 5, 2), Width: 8, Height: 8},
})

// withAllAlgorithms expands each line case into one case per line
// algorithm.  The algorithm name is appended to the case name.
func withAllAlgorithms(cases []TestCase) []TestCase {
	var res []TestCase
	for _, tc := range cases {
		for _, alg := range lineAlgorithms {
			c := tc
			c.Name += "_" + lowerName(alg.String())
			c.Op = Line{Algorithm: alg}
			res = append(res, c)
		}
	}
	return res
}

func lowerName(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch {
		case c >= 'A' && c <= 'Z':
			b[i] = c + 'a' - 'A'
		case c == '-':
			b[i] = '_'
		}
	}
	return string(b)
}
