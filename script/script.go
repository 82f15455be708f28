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

// Package script executes drawing instruction files.
//
// An instruction file contains one command per line.  Empty lines and
// lines starting with '#' are ignored.  The commands are
//
//	resetCanvas width height
//	saveCanvas name
//	setColor r g b
//	drawLine id x0 y0 x1 y1 algorithm
//	drawPolygon id x0 y0 x1 y1 ... algorithm
//	drawEllipse id x0 y0 x1 y1
//	drawCurve id x0 y0 x1 y1 ... algorithm
//	translate id dx dy
//	rotate id x y degrees
//	scale id x y factor
//	clip id xMin yMin xMax yMax algorithm
//
// Line algorithms are "Naive", "DDA" and "Bresenham", curve algorithms
// "Bezier" and "B-spline", and clip algorithms "Cohen-Sutherland" and
// "Liang-Barsky".  setColor is accepted and ignored, since canvases are
// monochrome; its arguments must still be three integers.  Drawing commands store the primitive under the given
// id, replacing any earlier primitive with the same id.  Every saveCanvas
// rasterises all stored primitives onto a fresh canvas.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/canvas"
)

// ErrUnknownID is returned when a command refers to a primitive which has
// not been drawn.
var ErrUnknownID = errors.New("unknown primitive id")

// Interpreter holds the state of an instruction file run.
//
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	// OutDir is the directory for saveCanvas output.
	OutDir string

	// Format is the file format used by saveCanvas.
	Format canvas.Format

	width, height int
	prims         map[string]*Primitive
	order         []string
}

// New returns an interpreter with an empty canvas of the given size.
func New(outDir string, width, height int) *Interpreter {
	return &Interpreter{
		OutDir: outDir,
		Format: canvas.BMP,
		width:  width,
		height: height,
		prims:  make(map[string]*Primitive),
	}
}

// maxLineLength is the longest instruction line Run accepts.
const maxLineLength = 16 << 20

// Run executes all commands read from r.  It stops at the first failing
// command; the returned error names the line number.
func (in *Interpreter) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineLength)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := in.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

// Exec executes a single command.
func (in *Interpreter) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	pixel.Logger().Debug("script command", "cmd", cmd, "args", args)

	switch cmd {
	case "resetCanvas":
		return in.resetCanvas(args)
	case "saveCanvas":
		return in.saveCanvas(args)
	case "setColor":
		// The canvas is monochrome.
		_, err := parseInts(args, 3)
		return err
	case "drawLine":
		return in.drawLine(args)
	case "drawPolygon":
		return in.drawPolygon(args)
	case "drawEllipse":
		return in.drawEllipse(args)
	case "drawCurve":
		return in.drawCurve(args)
	case "translate":
		return in.translate(args)
	case "rotate":
		return in.rotate(args)
	case "scale":
		return in.scale(args)
	case "clip":
		return in.clip(args)
	default:
		return fmt.Errorf("%w: unknown command %q", pixel.ErrInvalidArgument, cmd)
	}
}

// Primitive returns the primitive stored under id.
func (in *Interpreter) Primitive(id string) (*Primitive, bool) {
	p, ok := in.prims[id]
	return p, ok
}

// IDs returns the ids of all stored primitives, in the order they were
// first drawn.
func (in *Interpreter) IDs() []string {
	return append([]string(nil), in.order...)
}

// Render rasterises all stored primitives onto a new canvas.
func (in *Interpreter) Render() (*canvas.Canvas, error) {
	c, err := canvas.New(in.width, in.height)
	if err != nil {
		return nil, err
	}
	for _, id := range in.order {
		pixels, err := in.prims[id].Rasterise()
		if err != nil {
			return nil, fmt.Errorf("primitive %q: %w", id, err)
		}
		c.Plot(pixels)
	}
	return c, nil
}

func (in *Interpreter) store(id string, p *Primitive) {
	if _, exists := in.prims[id]; !exists {
		in.order = append(in.order, id)
	}
	in.prims[id] = p
}

func (in *Interpreter) remove(id string) {
	delete(in.prims, id)
	for i, other := range in.order {
		if other == id {
			in.order = append(in.order[:i], in.order[i+1:]...)
			break
		}
	}
}

func (in *Interpreter) lookup(id string) (*Primitive, error) {
	p, ok := in.prims[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownID, id)
	}
	return p, nil
}

func (in *Interpreter) resetCanvas(args []string) error {
	v, err := parseInts(args, 2)
	if err != nil {
		return err
	}
	if v[0] <= 0 || v[1] <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", pixel.ErrInvalidArgument, v[0], v[1])
	}
	in.width, in.height = v[0], v[1]
	clear(in.prims)
	in.order = in.order[:0]
	return nil
}

func (in *Interpreter) saveCanvas(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: saveCanvas needs a file name", pixel.ErrInvalidArgument)
	}
	c, err := in.Render()
	if err != nil {
		return err
	}
	return c.Save(filepath.Join(in.OutDir, args[0]+"."+in.Format.String()))
}

func (in *Interpreter) drawLine(args []string) error {
	if len(args) != 6 {
		return fmt.Errorf("%w: drawLine needs id, 4 coordinates and an algorithm", pixel.ErrInvalidArgument)
	}
	points, err := parsePoints(args[1:5])
	if err != nil {
		return err
	}
	alg, err := pixel.ParseLineAlgorithm(args[5])
	if err != nil {
		return err
	}
	in.store(args[0], &Primitive{Kind: KindLine, Points: points, LineAlgorithm: alg})
	return nil
}

func (in *Interpreter) drawPolygon(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: drawPolygon needs id, coordinates and an algorithm", pixel.ErrInvalidArgument)
	}
	points, err := parsePoints(args[1 : len(args)-1])
	if err != nil {
		return err
	}
	alg, err := pixel.ParseLineAlgorithm(args[len(args)-1])
	if err != nil {
		return err
	}
	in.store(args[0], &Primitive{Kind: KindPolygon, Points: points, LineAlgorithm: alg})
	return nil
}

func (in *Interpreter) drawEllipse(args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("%w: drawEllipse needs id and 4 coordinates", pixel.ErrInvalidArgument)
	}
	points, err := parsePoints(args[1:])
	if err != nil {
		return err
	}
	in.store(args[0], &Primitive{Kind: KindEllipse, Points: points})
	return nil
}

func (in *Interpreter) drawCurve(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: drawCurve needs id, coordinates and an algorithm", pixel.ErrInvalidArgument)
	}
	points, err := parsePoints(args[1 : len(args)-1])
	if err != nil {
		return err
	}
	alg, err := pixel.ParseCurveAlgorithm(args[len(args)-1])
	if err != nil {
		return err
	}
	if err := pixel.CheckCurve(points, alg); err != nil {
		return err
	}
	in.store(args[0], &Primitive{Kind: KindCurve, Points: points, CurveAlgorithm: alg})
	return nil
}

func (in *Interpreter) translate(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: translate needs id, dx and dy", pixel.ErrInvalidArgument)
	}
	p, err := in.lookup(args[0])
	if err != nil {
		return err
	}
	v, err := parseInts(args[1:], 2)
	if err != nil {
		return err
	}
	p.Points = pixel.Translate(p.Points, v[0], v[1])
	return nil
}

func (in *Interpreter) rotate(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("%w: rotate needs id, x, y and an angle", pixel.ErrInvalidArgument)
	}
	p, err := in.lookup(args[0])
	if err != nil {
		return err
	}
	if p.Kind == KindEllipse {
		return fmt.Errorf("%w: ellipses cannot be rotated", pixel.ErrInvalidArgument)
	}
	v, err := parseInts(args[1:], 3)
	if err != nil {
		return err
	}
	p.Points = pixel.Rotate(p.Points, v[0], v[1], v[2])
	return nil
}

func (in *Interpreter) scale(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("%w: scale needs id, x, y and a factor", pixel.ErrInvalidArgument)
	}
	p, err := in.lookup(args[0])
	if err != nil {
		return err
	}
	v, err := parseInts(args[1:3], 2)
	if err != nil {
		return err
	}
	s, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("%w: scale factor %q", pixel.ErrInvalidArgument, args[3])
	}
	p.Points = pixel.Scale(p.Points, v[0], v[1], s)
	return nil
}

func (in *Interpreter) clip(args []string) error {
	if len(args) != 6 {
		return fmt.Errorf("%w: clip needs id, 4 window coordinates and an algorithm", pixel.ErrInvalidArgument)
	}
	p, err := in.lookup(args[0])
	if err != nil {
		return err
	}
	if p.Kind != KindLine {
		return fmt.Errorf("%w: only lines can be clipped, %q is a %s", pixel.ErrInvalidArgument, args[0], p.Kind)
	}
	v, err := parseInts(args[1:5], 4)
	if err != nil {
		return err
	}
	alg, err := pixel.ParseClipAlgorithm(args[5])
	if err != nil {
		return err
	}

	res, err := pixel.Clip(p.Points[0], p.Points[1], v[0], v[1], v[2], v[3], alg)
	if err != nil {
		return err
	}
	if res.Outside {
		in.remove(args[0])
		return nil
	}
	p.Points = []pixel.Point{res.P0, res.P1}
	return nil
}

// parseInts parses exactly n integer arguments.
func parseInts(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: expected %d numbers, got %d", pixel.ErrInvalidArgument, n, len(args))
	}
	res := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", pixel.ErrInvalidArgument, a)
		}
		res[i] = v
	}
	return res, nil
}

// parsePoints parses a flat list of x, y coordinates.
func parsePoints(args []string) ([]pixel.Point, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of coordinates", pixel.ErrInvalidArgument)
	}
	v, err := parseInts(args, len(args))
	if err != nil {
		return nil, err
	}
	res := make([]pixel.Point, len(v)/2)
	for i := range res {
		res[i] = pixel.Pt(v[2*i], v[2*i+1])
	}
	return res, nil
}
