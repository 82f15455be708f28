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

// Command cgdraw rasterises 2D primitives.
//
// "cgdraw run FILE" executes a drawing instruction file (see package
// seehuhn.de/go/pixel/script) and writes the saved canvases to the output
// directory.  The other subcommands rasterise a single primitive and print
// the pixel coordinates as JSON.  Negative coordinates must follow a "--"
// argument, so that they are not mistaken for flags.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/canvas"
	"seehuhn.de/go/pixel/script"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "cgdraw:", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	cfg := defaultConfig()

	return &cli.App{
		Name:      "cgdraw",
		Usage:     "rasterise lines, polygons, ellipses and curves",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "read settings from a TOML `FILE`",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "one of debug, info, warn, error",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = loadConfig(c.String("config"))
			if err != nil {
				return err
			}
			if c.IsSet("log-level") {
				cfg.LogLevel = c.String("log-level")
			}
			level, err := cfg.level()
			if err != nil {
				return err
			}
			pixel.SetLogger(slog.New(slog.NewTextHandler(c.App.ErrWriter,
				&slog.HandlerOptions{Level: level})))
			return nil
		},
		Commands: []*cli.Command{
			runCommand(&cfg),
			lineCommand(),
			polygonCommand(),
			ellipseCommand(),
			curveCommand(),
			clipCommand(),
		},
	}
}

func runCommand(cfg *Config) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "execute a drawing instruction file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output `DIR`"},
			&cli.IntFlag{Name: "width", Usage: "initial canvas width"},
			&cli.IntFlag{Name: "height", Usage: "initial canvas height"},
			&cli.StringFlag{Name: "format", Usage: "output format: png, bmp, tiff or pdf"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("run needs exactly one instruction file")
			}
			if c.IsSet("out") {
				cfg.OutDir = c.String("out")
			}
			if c.IsSet("width") {
				cfg.Width = c.Int("width")
			}
			if c.IsSet("height") {
				cfg.Height = c.Int("height")
			}
			if c.IsSet("format") {
				cfg.Format = c.String("format")
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			format, err := canvas.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
				return err
			}

			f, err := os.Open(c.Args().First())
			if err != nil {
				return err
			}
			defer f.Close()

			in := script.New(cfg.OutDir, cfg.Width, cfg.Height)
			in.Format = format
			if err := in.Run(f); err != nil {
				return fmt.Errorf("%s: %w", c.Args().First(), err)
			}
			return nil
		},
	}
}

func lineAlgorithmFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a"},
		Value:   pixel.Bresenham.String(),
		Usage:   "Naive, DDA or Bresenham",
	}
}

func lineCommand() *cli.Command {
	return &cli.Command{
		Name:      "line",
		Usage:     "print the pixels of a line segment",
		ArgsUsage: "x0 y0 x1 y1",
		Flags:     []cli.Flag{lineAlgorithmFlag()},
		Action: func(c *cli.Context) error {
			pts, err := pointArgs(c, 2, 2)
			if err != nil {
				return err
			}
			alg, err := pixel.ParseLineAlgorithm(c.String("algorithm"))
			if err != nil {
				return err
			}
			pixels, err := pixel.DrawLine(pts[0], pts[1], alg)
			if err != nil {
				return err
			}
			return writeJSON(c.App.Writer, pairs(pixels))
		},
	}
}

func polygonCommand() *cli.Command {
	return &cli.Command{
		Name:      "polygon",
		Usage:     "print the pixels of a closed polygon",
		ArgsUsage: "x0 y0 x1 y1 ...",
		Flags:     []cli.Flag{lineAlgorithmFlag()},
		Action: func(c *cli.Context) error {
			pts, err := pointArgs(c, 1, -1)
			if err != nil {
				return err
			}
			alg, err := pixel.ParseLineAlgorithm(c.String("algorithm"))
			if err != nil {
				return err
			}
			pixels, err := pixel.DrawPolygon(pts, alg)
			if err != nil {
				return err
			}
			return writeJSON(c.App.Writer, pairs(pixels))
		},
	}
}

func ellipseCommand() *cli.Command {
	return &cli.Command{
		Name:      "ellipse",
		Usage:     "print the pixels of the ellipse inscribed in a box",
		ArgsUsage: "x0 y0 x1 y1",
		Action: func(c *cli.Context) error {
			pts, err := pointArgs(c, 2, 2)
			if err != nil {
				return err
			}
			return writeJSON(c.App.Writer, pairs(pixel.DrawEllipse(pts[0], pts[1])))
		},
	}
}

func curveCommand() *cli.Command {
	return &cli.Command{
		Name:      "curve",
		Usage:     "print the pixels of a Bezier or B-spline curve",
		ArgsUsage: "x0 y0 x1 y1 ...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   pixel.Bezier.String(),
				Usage:   "Bezier or B-spline",
			},
		},
		Action: func(c *cli.Context) error {
			pts, err := pointArgs(c, 1, -1)
			if err != nil {
				return err
			}
			alg, err := pixel.ParseCurveAlgorithm(c.String("algorithm"))
			if err != nil {
				return err
			}
			pixels, err := pixel.DrawCurve(pts, alg)
			if err != nil {
				return err
			}
			return writeJSON(c.App.Writer, pairs(pixels))
		},
	}
}

// clipOutput is the JSON form of a pixel.ClipResult.
type clipOutput struct {
	Outside bool    `json:"outside"`
	Segment [][]int `json:"segment,omitempty"`
}

func clipCommand() *cli.Command {
	return &cli.Command{
		Name:      "clip",
		Usage:     "clip a line segment to a window",
		ArgsUsage: "x0 y0 x1 y1 xMin yMin xMax yMax",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   pixel.CohenSutherland.String(),
				Usage:   "Cohen-Sutherland or Liang-Barsky",
			},
		},
		Action: func(c *cli.Context) error {
			pts, err := pointArgs(c, 4, 4)
			if err != nil {
				return err
			}
			alg, err := pixel.ParseClipAlgorithm(c.String("algorithm"))
			if err != nil {
				return err
			}
			res, err := pixel.Clip(pts[0], pts[1], pts[2].X, pts[2].Y, pts[3].X, pts[3].Y, alg)
			if err != nil {
				return err
			}
			out := clipOutput{Outside: res.Outside}
			if !res.Outside {
				out.Segment = pairs([]pixel.Point{res.P0, res.P1})
			}
			return writeJSON(c.App.Writer, out)
		},
	}
}

// pointArgs parses the positional arguments as x, y pairs.  A negative
// maximum means no upper limit.
func pointArgs(c *cli.Context, minPoints, maxPoints int) ([]pixel.Point, error) {
	args := c.Args().Slice()
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of coordinates", pixel.ErrInvalidArgument)
	}
	n := len(args) / 2
	if n < minPoints || (maxPoints >= 0 && n > maxPoints) {
		return nil, fmt.Errorf("%w: %s needs %s", pixel.ErrInvalidArgument, c.Command.Name, c.Command.ArgsUsage)
	}
	res := make([]pixel.Point, n)
	for i := range res {
		x, err := strconv.Atoi(args[2*i])
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", pixel.ErrInvalidArgument, args[2*i])
		}
		y, err := strconv.Atoi(args[2*i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", pixel.ErrInvalidArgument, args[2*i+1])
		}
		res[i] = pixel.Pt(x, y)
	}
	return res, nil
}

// pairs converts pixels to [x, y] pairs for JSON output.
func pairs(pixels []pixel.Point) [][]int {
	res := make([][]int, len(pixels))
	for i, p := range pixels {
		res[i] = []int{p.X, p.Y}
	}
	return res
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	return enc.Encode(v)
}
