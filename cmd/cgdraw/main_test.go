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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/pixel"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { pixel.SetLogger(nil) })

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	app := newApp(stdout, stderr)
	err := app.Run(append([]string{"cgdraw"}, args...))
	return stdout.String(), err
}

func TestLine(t *testing.T) {
	out, err := run(t, "line", "-a", "Naive", "0", "0", "5", "2")
	require.NoError(t, err)

	var got [][]int
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, [][]int{{0, 0}, {1, 0}, {2, 0}, {3, 1}, {4, 1}, {5, 2}}, got)
}

func TestLineDefaultAlgorithm(t *testing.T) {
	out, err := run(t, "line", "0", "0", "5", "2")
	require.NoError(t, err)
	require.JSONEq(t, `[[0,0],[1,0],[2,1],[3,1],[4,2],[5,2]]`, out)
}

func TestLineBadArgs(t *testing.T) {
	_, err := run(t, "line", "0", "0", "5")
	require.ErrorIs(t, err, pixel.ErrInvalidArgument)

	_, err = run(t, "line", "0", "0", "5", "2", "7", "7")
	require.ErrorIs(t, err, pixel.ErrInvalidArgument)

	_, err = run(t, "line", "-a", "Wu", "0", "0", "5", "2")
	require.ErrorIs(t, err, pixel.ErrInvalidArgument)
}

func TestPolygon(t *testing.T) {
	out, err := run(t, "polygon", "3", "4")
	require.NoError(t, err)
	require.JSONEq(t, `[[3,4]]`, out)
}

func TestEllipse(t *testing.T) {
	out, err := run(t, "ellipse", "0", "0", "4", "2")
	require.NoError(t, err)

	var got [][]int
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Contains(t, got, []int{4, 1})
	require.Contains(t, got, []int{2, 2})
}

func TestCurve(t *testing.T) {
	out, err := run(t, "curve", "-a", "B-spline", "0", "0", "10", "0", "20", "0", "30", "0")
	require.NoError(t, err)

	var got [][]int
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, []int{10, 0}, got[0])
	require.Equal(t, []int{20, 0}, got[len(got)-1])

	_, err = run(t, "curve", "-a", "B-spline", "0", "0", "10", "0")
	require.ErrorIs(t, err, pixel.ErrInvalidArgument)
}

func TestClip(t *testing.T) {
	out, err := run(t, "clip", "-a", "Liang-Barsky", "--", "-5", "5", "5", "5", "0", "0", "10", "10")
	require.NoError(t, err)
	require.JSONEq(t, `{"outside":false,"segment":[[0,5],[5,5]]}`, out)

	out, err = run(t, "clip", "--", "5", "20", "-10", "5", "0", "0", "10", "10")
	require.NoError(t, err)
	require.JSONEq(t, `{"outside":true}`, out)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "draw.txt")
	require.NoError(t, os.WriteFile(script, []byte("resetCanvas 40 30\ndrawEllipse e 0 0 39 29\nsaveCanvas pic\n"), 0o644))

	out := filepath.Join(dir, "out")
	_, err := run(t, "run", "-o", out, "--format", "png", script)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "pic.png"))
	require.NoError(t, err)
}

func TestRunScriptError(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "draw.txt")
	require.NoError(t, os.WriteFile(script, []byte("drawLine a 0 0 1 1 DDA\nrotate b 0 0 9\n"), 0o644))

	_, err := run(t, "run", "-o", dir, script)
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2:")
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "cgdraw.toml")
	out := filepath.Join(dir, "images")
	content := "width = 50\nheight = 20\nformat = \"pdf\"\nout_dir = " + quote(out) + "\nlog_level = \"error\"\n"
	require.NoError(t, os.WriteFile(conf, []byte(content), 0o644))

	cfg, err := loadConfig(conf)
	require.NoError(t, err)
	require.Equal(t, Config{Width: 50, Height: 20, Format: "pdf", OutDir: out, LogLevel: "error"}, cfg)

	script := filepath.Join(dir, "draw.txt")
	require.NoError(t, os.WriteFile(script, []byte("drawLine a 0 0 49 19 Bresenham\nsaveCanvas x\n"), 0o644))
	_, err = run(t, "--config", conf, "run", script)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "x.pdf"))
	require.NoError(t, err)
}

func TestConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	for _, content := range []string{
		"width = 0\n",
		"format = \"gif\"\n",
		"log_level = \"loud\"\n",
		"width = \"wide\"\n",
	} {
		conf := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(conf, []byte(content), 0o644))
		_, err := loadConfig(conf)
		require.Error(t, err, content)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
	require.NoError(t, cfg.validate())
}

// quote returns s as a TOML literal string.
func quote(s string) string {
	return "'" + s + "'"
}
