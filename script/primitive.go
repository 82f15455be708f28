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

package script

import (
	"fmt"

	"seehuhn.de/go/pixel"
)

// Kind identifies the type of a primitive.
type Kind int

const (
	KindLine Kind = iota
	KindPolygon
	KindEllipse
	KindCurve
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	case KindEllipse:
		return "ellipse"
	case KindCurve:
		return "curve"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Primitive is a drawable object, stored by its control vertices.
// Lines and ellipses have exactly two vertices; for ellipses these are
// opposite corners of the bounding box.
type Primitive struct {
	Kind   Kind
	Points []pixel.Point

	// LineAlgorithm is used for lines and polygons.
	LineAlgorithm pixel.LineAlgorithm

	// CurveAlgorithm is used for curves.
	CurveAlgorithm pixel.CurveAlgorithm
}

// Rasterise returns the pixels of the primitive.
func (p *Primitive) Rasterise() ([]pixel.Point, error) {
	switch p.Kind {
	case KindLine:
		return pixel.DrawLine(p.Points[0], p.Points[1], p.LineAlgorithm)
	case KindPolygon:
		return pixel.DrawPolygon(p.Points, p.LineAlgorithm)
	case KindEllipse:
		return pixel.DrawEllipse(p.Points[0], p.Points[1]), nil
	case KindCurve:
		return pixel.DrawCurve(p.Points, p.CurveAlgorithm)
	default:
		return nil, fmt.Errorf("%w: unknown primitive kind %d", pixel.ErrInvalidArgument, int(p.Kind))
	}
}
