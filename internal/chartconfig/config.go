// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chartconfig loads chart settings from a YAML file.
//
// A file looks like:
//
//	title: nightly
//	surface: {width: 1024, height: 512}
//	plot_area: {width: 960, height: 448}
//	major_grid: {columns: 8, rows: 4}
//	minor_grid: {columns: 4, rows: 4}
//	strokes: {minor: 0.5, major: 1, border: 2}
//	palette:
//	  background: "#ffffff"
//	format: png
//	reject_outliers: true
//	sort: -mean
//
// Fields that are not set keep their defaults.
package chartconfig

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/benchviz/resultanalyzer/benchchart"
	"github.com/benchviz/resultanalyzer/benchstat"
)

// Size is a width and height in points.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Grid is a number of columns and rows.
type Grid struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// Strokes are line widths in points.
type Strokes struct {
	Minor  float64 `yaml:"minor"`
	Major  float64 `yaml:"major"`
	Border float64 `yaml:"border"`
}

// Palette holds "#rrggbb" colors. Empty entries keep the default.
type Palette struct {
	Background string `yaml:"background"`
	Axis       string `yaml:"axis"`
	MajorLine  string `yaml:"major_line"`
	MinorLine  string `yaml:"minor_line"`
	Title      string `yaml:"title"`
	Unit       string `yaml:"unit"`
}

// File is the content of a chart configuration file.
type File struct {
	Title     string  `yaml:"title"`
	Surface   Size    `yaml:"surface"`
	PlotArea  Size    `yaml:"plot_area"`
	MajorGrid Grid    `yaml:"major_grid"`
	MinorGrid *Grid   `yaml:"minor_grid"` // nil means no minor grid
	Strokes   Strokes `yaml:"strokes"`
	Palette   Palette `yaml:"palette"`

	// Format is the output format of rendered charts: svg, png or
	// pdf.
	Format string `yaml:"format"`

	// RejectOutliers drops outlying observations before charting.
	RejectOutliers bool `yaml:"reject_outliers"`

	// Sort orders the statistics table; see benchstat.ParseSort.
	Sort string `yaml:"sort"`
}

// Default returns the settings used when there is no file.
func Default() *File {
	return &File{
		Surface:   Size{800, 400},
		PlotArea:  Size{720, 360},
		MajorGrid: Grid{10, 10},
		Strokes: Strokes{
			Minor:  float64(benchchart.DefaultStrokes.Minor),
			Major:  float64(benchchart.DefaultStrokes.Major),
			Border: float64(benchchart.DefaultStrokes.Border),
		},
		Format: "svg",
		Sort:   "name",
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a configuration. Unknown fields are
// an error.
func Parse(data []byte) (*File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

var formats = map[string]bool{"svg": true, "png": true, "pdf": true}

// Validate checks the settings that the chart composer does not.
// Geometry is checked when the chart is composed.
func (f *File) Validate() error {
	if !formats[f.Format] {
		return fmt.Errorf("unknown format %q: want svg, png or pdf", f.Format)
	}
	if _, ok := benchstat.ParseSort(f.Sort); !ok {
		return fmt.Errorf("unknown sort order %q", f.Sort)
	}
	if _, err := f.palette(); err != nil {
		return err
	}
	return nil
}

func (f *File) palette() (benchchart.Palette, error) {
	p := benchchart.DefaultPalette()
	for _, c := range []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"background", f.Palette.Background, &p.Background},
		{"axis", f.Palette.Axis, &p.Axis},
		{"major_line", f.Palette.MajorLine, &p.MajorLine},
		{"minor_line", f.Palette.MinorLine, &p.MinorLine},
		{"title", f.Palette.Title, &p.Title},
		{"unit", f.Palette.Unit, &p.Unit},
	} {
		if c.hex == "" {
			continue
		}
		v, err := benchchart.ParseHexColor(c.hex)
		if err != nil {
			return benchchart.Palette{}, fmt.Errorf("palette %s: %w", c.name, err)
		}
		*c.dst = v
	}
	return p, nil
}

// Chart returns the chart configuration described by f, with no axes
// or renderers.
func (f *File) Chart() (benchchart.Config, error) {
	p, err := f.palette()
	if err != nil {
		return benchchart.Config{}, err
	}
	c := benchchart.NewConfig().
		WithTitle(f.Title).
		WithSurface(vg.Length(f.Surface.Width), vg.Length(f.Surface.Height)).
		WithPlotArea(vg.Length(f.PlotArea.Width), vg.Length(f.PlotArea.Height)).
		WithMajorGrid(f.MajorGrid.Columns, f.MajorGrid.Rows).
		WithPalette(p).
		WithStrokes(benchchart.Strokes{
			Minor:  vg.Length(f.Strokes.Minor),
			Major:  vg.Length(f.Strokes.Major),
			Border: vg.Length(f.Strokes.Border),
		})
	if f.MinorGrid != nil {
		c = c.WithMinorGrid(f.MinorGrid.Columns, f.MinorGrid.Rows)
	}
	return c, nil
}
