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
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/pixel/canvas"
)

// Config holds the settings which can be given in a TOML file.
// Command line flags take precedence.
type Config struct {
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Format   string `toml:"format"`
	OutDir   string `toml:"out_dir"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Width:    1000,
		Height:   1000,
		Format:   "bmp",
		OutDir:   ".",
		LogLevel: "warn",
	}
}

// loadConfig reads the named TOML file on top of the defaults.  An empty
// name gives the defaults.
func loadConfig(fname string) (Config, error) {
	cfg := defaultConfig()
	if fname == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, cfg.validate()
}

func (cfg Config) validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}
	if _, err := canvas.ParseFormat(cfg.Format); err != nil {
		return err
	}
	if _, err := cfg.level(); err != nil {
		return err
	}
	return nil
}

func (cfg Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return l, nil
}
