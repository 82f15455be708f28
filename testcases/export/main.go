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

// Command export writes the test cases and their rasterised pixels to
// JSON, for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/pixels.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string  `json:"name"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Op        string  `json:"op"`
	Algorithm string  `json:"algorithm,omitempty"`
	Points    [][]int `json:"points"`
	Pixels    [][]int `json:"pixels"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	pixels, err := tc.Rasterise()
	if err != nil {
		return jsonTestCase{}, fmt.Errorf("%s_%s: %w", category, tc.Name, err)
	}

	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Points: pairs(tc.Vertices()),
		Pixels: pairs(pixels),
	}

	switch op := tc.Op.(type) {
	case testcases.Line:
		jtc.Op = "line"
		jtc.Algorithm = op.Algorithm.String()
	case testcases.Polygon:
		jtc.Op = "polygon"
		jtc.Algorithm = op.Algorithm.String()
	case testcases.Ellipse:
		jtc.Op = "ellipse"
	case testcases.Curve:
		jtc.Op = "curve"
		jtc.Algorithm = op.Algorithm.String()
	}
	return jtc, nil
}

func pairs(pts []pixel.Point) [][]int {
	res := make([][]int, len(pts))
	for i, p := range pts {
		res[i] = []int{p.X, p.Y}
	}
	return res
}
