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

package pixel_test

import (
	"errors"
	"io/fs"
	"maps"
	"path/filepath"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/canvas"
	"seehuhn.de/go/pixel/testcases"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

// TestScenarios rasterises every test case and checks the general
// properties of the output.
//
// Reference images are not checked in.  The comparison against them only
// runs after "go run ./testcases/genref" has been run from the module
// root; until then each subtest is skipped once the property checks
// have passed.
func TestScenarios(t *testing.T) {
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if !validName.MatchString(tc.Name) {
				t.Errorf("invalid test case name %q", name)
			}
			if seen[name] {
				t.Errorf("duplicate test case %q", name)
			}
			seen[name] = true

			t.Run(name, func(t *testing.T) {
				pixels, err := tc.Rasterise()
				if err != nil {
					t.Fatal(err)
				}
				if len(pixels) == 0 {
					t.Fatal("no pixels")
				}
				checkConnected(t, tc, pixels)

				c, err := canvas.New(tc.Width, tc.Height)
				if err != nil {
					t.Fatal(err)
				}
				c.Plot(pixels)

				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := canvas.Load(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image; run testcases/genref to create it")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}
				compareCanvas(t, ref, c)
			})
		}
	}
}

func checkConnected(t *testing.T, tc testcases.TestCase, pixels []pixel.Point) {
	t.Helper()

	switch op := tc.Op.(type) {
	case testcases.Line:
		if op.Algorithm == pixel.Naive {
			return
		}
	case testcases.Curve:
	default:
		return
	}
	for i := 1; i < len(pixels); i++ {
		d := pixels[i].Sub(pixels[i-1])
		if d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 {
			t.Errorf("gap between %v and %v", pixels[i-1], pixels[i])
			return
		}
	}
}

func compareCanvas(t *testing.T, expected, actual *canvas.Canvas) {
	t.Helper()

	if expected.Width() != actual.Width() || expected.Height() != actual.Height() {
		t.Fatalf("size mismatch: expected %dx%d, got %dx%d",
			expected.Width(), expected.Height(), actual.Width(), actual.Height())
	}
	diff := 0
	for y := range actual.Height() {
		for x := range actual.Width() {
			if expected.IsInk(x, y) != actual.IsInk(x, y) {
				if diff < 5 {
					t.Errorf("pixel (%d,%d): expected ink=%t", x, y, expected.IsInk(x, y))
				}
				diff++
			}
		}
	}
	if diff > 0 {
		t.Errorf("%d pixels differ", diff)
	}
}
