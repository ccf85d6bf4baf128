// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart composes benchmark charts.
//
// A chart is described by a Config, built up from NewConfig with
// chained With calls. Each call returns a new Config and leaves its
// receiver unchanged, so a base configuration can be shared and
// specialized freely. Compose validates a Config and lays it out into
// a Scene: an ordered list of drawing primitives that can be replayed
// onto any gonum canvas or encoded as SVG, PNG or PDF.
//
// Series are drawn by Renderers registered by name. Each renderer is
// handed the resolved ranges of its axes and a Surface to draw on, and
// maps its own data into device coordinates with Axes.
package benchchart

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/plot/vg"
)

// ErrInvalidConfig is wrapped by every *ConfigError.
var ErrInvalidConfig = errors.New("invalid chart configuration")

// A ConfigError reports a Config that cannot be composed.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid chart configuration: %s: %s", e.Field, e.Msg)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configErrorf(field, format string, args ...interface{}) *ConfigError {
	return &ConfigError{field, fmt.Sprintf(format, args...)}
}

// A Grid is a number of equal columns and rows.
type Grid struct {
	Columns, Rows int
}

// Strokes are the line widths of a chart's fixed elements.
type Strokes struct {
	Minor, Major, Border vg.Length
}

// DefaultStrokes are the stroke widths of NewConfig.
var DefaultStrokes = Strokes{Minor: 1, Major: 3, Border: 5}

type registered struct {
	name  string
	r     Renderer
	xSide Side
	ySide Side
}

// Config is the description of a chart. The zero Config has no
// surface and cannot be composed; start from NewConfig.
type Config struct {
	title     string
	surface   Size
	plot      Size
	palette   Palette
	major     Grid
	minor     Grid // zero means no minor grid
	axes      [numSides]AxisSpec
	strokes   Strokes
	renderers []registered

	err error // first misuse of a With method
}

// NewConfig returns the default chart configuration: an 800x400
// surface with a centered plot area covering 90% of it, the default
// palette, a 10x10 major grid, no minor grid, no axes and no
// renderers.
func NewConfig() Config {
	return Config{
		surface: Size{800, 400},
		plot:    Size{720, 360},
		palette: DefaultPalette(),
		major:   Grid{10, 10},
		strokes: DefaultStrokes,
	}
}

// WithTitle sets the chart title, drawn above the plot area unless a
// top axis occupies that margin.
func (c Config) WithTitle(title string) Config {
	c.title = title
	return c
}

// WithSurface sets the size of the whole drawing.
func (c Config) WithSurface(w, h vg.Length) Config {
	c.surface = Size{w, h}
	return c
}

// WithPlotArea sets the size of the plot area, which is centered in
// the surface. The margins hold axis labels.
func (c Config) WithPlotArea(w, h vg.Length) Config {
	c.plot = Size{w, h}
	return c
}

// WithPalette sets the colors of the chart's fixed elements.
func (c Config) WithPalette(p Palette) Config {
	c.palette = p
	return c
}

// WithMajorGrid sets the number of major grid columns and rows.
func (c Config) WithMajorGrid(columns, rows int) Config {
	c.major = Grid{columns, rows}
	return c
}

// WithMinorGrid sets the number of minor grid columns and rows within
// each major grid cell. WithMinorGrid(0, 0) disables the minor grid.
func (c Config) WithMinorGrid(columns, rows int) Config {
	c.minor = Grid{columns, rows}
	return c
}

// WithoutMinorGrid disables the minor grid.
func (c Config) WithoutMinorGrid() Config {
	return c.WithMinorGrid(0, 0)
}

// WithAxis sets the axis along side. The zero AxisSpec removes it.
func (c Config) WithAxis(side Side, a AxisSpec) Config {
	if !side.valid() {
		if c.err == nil {
			c.err = configErrorf("axis", "unknown side %v", side)
		}
		return c
	}
	c.axes[side] = a
	return c
}

// WithoutAxis removes the axis along side.
func (c Config) WithoutAxis(side Side) Config {
	return c.WithAxis(side, AxisSpec{})
}

// WithStrokes sets the stroke widths of the grids and border.
func (c Config) WithStrokes(s Strokes) Config {
	c.strokes = s
	return c
}

// WithRenderer registers r under name to draw against the bottom and
// left axes. See WithRendererAxes.
func (c Config) WithRenderer(name string, r Renderer) Config {
	return c.WithRendererAxes(name, r, Bottom, Left)
}

// WithRendererAxes registers r under name to draw against the axes
// along xSide and ySide. Renderers draw in registration order;
// registering a name again replaces the earlier renderer but keeps
// its position.
func (c Config) WithRendererAxes(name string, r Renderer, xSide, ySide Side) Config {
	reg := registered{name, r, xSide, ySide}
	rs := slices.Clone(c.renderers)
	i := slices.IndexFunc(rs, func(x registered) bool { return x.name == name })
	if i >= 0 {
		rs[i] = reg
	} else {
		rs = append(rs, reg)
	}
	c.renderers = rs
	return c
}

// Renderers returns the registered renderer names in drawing order.
func (c Config) Renderers() []string {
	names := make([]string, len(c.renderers))
	for i, r := range c.renderers {
		names[i] = r.name
	}
	return names
}

// Title returns the chart title.
func (c Config) Title() string {
	return c.title
}

// Axis returns the axis along side.
func (c Config) Axis(side Side) AxisSpec {
	if !side.valid() {
		return AxisSpec{}
	}
	return c.axes[side]
}

// MinorGrid returns the minor grid density and whether it is enabled.
func (c Config) MinorGrid() (Grid, bool) {
	return c.minor, c.minor != (Grid{})
}

// validate returns the first problem with c.
func (c Config) validate() error {
	if c.err != nil {
		return c.err
	}
	switch {
	case !(c.surface.W > 0 && c.surface.H > 0):
		return configErrorf("surface", "size %v must be positive", c.surface)
	case !(c.plot.W > 0 && c.plot.H > 0):
		return configErrorf("plot area", "size %v must be positive", c.plot)
	case c.plot.W > c.surface.W || c.plot.H > c.surface.H:
		return configErrorf("plot area", "size %v exceeds surface %v", c.plot, c.surface)
	case c.major.Columns <= 0 || c.major.Rows <= 0:
		return configErrorf("major grid", "density %dx%d must be positive", c.major.Columns, c.major.Rows)
	}
	if g, ok := c.MinorGrid(); ok && (g.Columns <= 0 || g.Rows <= 0) {
		return configErrorf("minor grid", "density %dx%d must be positive, or 0x0 to disable", g.Columns, g.Rows)
	}
	for _, s := range []struct {
		name  string
		width vg.Length
	}{
		{"minor stroke", c.strokes.Minor},
		{"major stroke", c.strokes.Major},
		{"border stroke", c.strokes.Border},
	} {
		if !(s.width >= 0) {
			return configErrorf(s.name, "width %v must not be negative", float64(s.width))
		}
	}
	if name, ok := c.palette.complete(); !ok {
		return configErrorf("palette", "%s color is not set", name)
	}
	for _, r := range c.renderers {
		field := fmt.Sprintf("renderer %q", r.name)
		switch {
		case r.name == "":
			return configErrorf("renderer", "empty name")
		case r.r == nil:
			return configErrorf(field, "nil renderer")
		case !r.xSide.valid() || !r.xSide.Horizontal():
			return configErrorf(field, "x axis must be top or bottom, not %v", r.xSide)
		case !r.ySide.valid() || r.ySide.Horizontal():
			return configErrorf(field, "y axis must be left or right, not %v", r.ySide)
		}
		for _, side := range []Side{r.xSide, r.ySide} {
			a := c.axes[side]
			if !a.Enabled() {
				return configErrorf(field, "no %v axis", side)
			}
			if a.Range.Empty() {
				return configErrorf(field, "%v axis range %v is empty", side, a.Range)
			}
		}
	}
	return nil
}
