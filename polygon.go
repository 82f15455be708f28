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

// DrawPolygon rasterises the closed polygon through the given vertices.
//
// Edge i runs from vertices[i-1] to vertices[i], with edge 0 joining the
// last vertex to the first.  The pixel sequences of the edges are
// concatenated in edge order.  Pixels shared by adjacent edges appear
// once per edge.  An empty vertex list gives an empty result, a single
// vertex gives that one pixel.
func DrawPolygon(vertices []Point, alg LineAlgorithm) ([]Point, error) {
	draw, err := alg.lineFunc()
	if err != nil {
		return nil, err
	}

	n := len(vertices)
	var res []Point
	for i, v := range vertices {
		res = append(res, draw(vertices[(i+n-1)%n], v)...)
	}
	Logger().Debug("polygon rasterised",
		"algorithm", alg, "vertices", n, "pixels", len(res))
	return res, nil
}
