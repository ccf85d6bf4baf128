// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

const (
	tickLen       = vg.Length(4)
	tickFontSize  = vg.Length(7)
	titleFontSize = vg.Length(9)
)

// Compose validates c and lays it out into a Scene. The layers are,
// bottom to top: the background, the minor grid (if enabled), the
// major grid, the plot border, the axes (if any) and one layer per
// renderer in registration order.
//
// If c is invalid, Compose returns a *ConfigError. If a renderer fails,
// Compose returns its error. In either case no Scene is returned.
func (c Config) Compose() (*Scene, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	offset := vg.Point{X: (c.surface.W - c.plot.W) / 2, Y: (c.surface.H - c.plot.H) / 2}
	plotRect := vg.Rectangle{Min: offset, Max: offset.Add(vg.Point{X: c.plot.W, Y: c.plot.H})}

	scene := &Scene{Size: c.surface}
	scene.Layers = append(scene.Layers, Layer{
		Kind: BackgroundLayer,
		Primitives: []Primitive{Rect{
			Max:  vg.Point{X: c.surface.W, Y: c.surface.H},
			Fill: c.palette.Background,
		}},
	})

	if minor, ok := c.MinorGrid(); ok {
		lines := Grid{c.major.Columns * minor.Columns, c.major.Rows * minor.Rows}
		scene.Layers = append(scene.Layers, Layer{
			Kind:       MinorGridLayer,
			Primitives: gridLines(c.plot, offset, lines, c.palette.MinorLine, c.strokes.Minor),
		})
	}
	scene.Layers = append(scene.Layers, Layer{
		Kind:       MajorGridLayer,
		Primitives: gridLines(c.plot, offset, c.major, c.palette.MajorLine, c.strokes.Major),
	})
	scene.Layers = append(scene.Layers, Layer{
		Kind: BorderLayer,
		Primitives: []Primitive{Rect{
			Min:    plotRect.Min,
			Max:    plotRect.Max,
			Stroke: c.palette.MajorLine,
			Width:  c.strokes.Border,
		}},
	})

	if axes := c.axisPrimitives(plotRect); len(axes) > 0 {
		scene.Layers = append(scene.Layers, Layer{Kind: AxesLayer, Primitives: axes})
	}

	for _, r := range c.renderers {
		ax := Axes{X: c.axes[r.xSide].Range, Y: c.axes[r.ySide].Range, Plot: plotRect}
		var s Surface
		if err := r.r.Render(ax, &s); err != nil {
			return nil, fmt.Errorf("renderer %q: %w", r.name, err)
		}
		scene.Layers = append(scene.Layers, Layer{Kind: SeriesLayer, Name: r.name, Primitives: s.prims})
	}
	return scene, nil
}

// gridLines returns lines.Columns+1 vertical and lines.Rows+1
// horizontal lines dividing a plot area of the given size, placed at
// offset, into equal cells.
func gridLines(size Size, offset vg.Point, lines Grid, clr color.Color, width vg.Length) []Primitive {
	prims := make([]Primitive, 0, lines.Columns+lines.Rows+2)
	dx := size.W / vg.Length(lines.Columns)
	for i := 0; i <= lines.Columns; i++ {
		x := offset.X + vg.Length(i)*dx
		prims = append(prims, Line{
			From:  vg.Point{X: x, Y: offset.Y},
			To:    vg.Point{X: x, Y: offset.Y + size.H},
			Color: clr,
			Width: width,
		})
	}
	dy := size.H / vg.Length(lines.Rows)
	for i := 0; i <= lines.Rows; i++ {
		y := offset.Y + vg.Length(i)*dy
		prims = append(prims, Line{
			From:  vg.Point{X: offset.X, Y: y},
			To:    vg.Point{X: offset.X + size.W, Y: y},
			Color: clr,
			Width: width,
		})
	}
	return prims
}

// axisPrimitives returns the tick marks, tick labels and titles of
// every enabled axis, and the chart title. Ticks sit on the major grid
// lines.
func (c Config) axisPrimitives(plot vg.Rectangle) []Primitive {
	var prims []Primitive
	tick := func(from, to vg.Point) {
		prims = append(prims, Line{From: from, To: to, Color: c.palette.Axis, Width: 1})
	}
	label := func(pos vg.Point, s string, xa text.XAlignment, ya text.YAlignment) {
		prims = append(prims, Text{Pos: pos, Text: s, Color: c.palette.Unit, Size: tickFontSize, XAlign: xa, YAlign: ya})
	}
	title := func(pos vg.Point, s string, rot float64) {
		prims = append(prims, Text{Pos: pos, Text: s, Color: c.palette.Title, Size: titleFontSize, XAlign: text.XCenter, YAlign: text.YTop, Rotation: rot})
	}

	center := vg.Point{X: (plot.Min.X + plot.Max.X) / 2, Y: (plot.Min.Y + plot.Max.Y) / 2}
	for side := Left; side < numSides; side++ {
		a := c.axes[side]
		if !a.Enabled() {
			continue
		}
		var n int
		var size vg.Length
		if side.Horizontal() {
			n, size = c.major.Columns, plot.Size().X
		} else {
			n, size = c.major.Rows, plot.Size().Y
		}
		for i, t := range a.Ticks(n) {
			d := vg.Length(i) * size / vg.Length(n)
			switch side {
			case Left:
				p := vg.Point{X: plot.Min.X, Y: plot.Min.Y + d}
				tick(p, vg.Point{X: p.X - tickLen, Y: p.Y})
				label(vg.Point{X: p.X - tickLen - 1, Y: p.Y}, t.Label, text.XRight, text.YCenter)
			case Right:
				p := vg.Point{X: plot.Max.X, Y: plot.Min.Y + d}
				tick(p, vg.Point{X: p.X + tickLen, Y: p.Y})
				label(vg.Point{X: p.X + tickLen + 1, Y: p.Y}, t.Label, text.XLeft, text.YCenter)
			case Bottom:
				p := vg.Point{X: plot.Min.X + d, Y: plot.Min.Y}
				tick(p, vg.Point{X: p.X, Y: p.Y - tickLen})
				label(vg.Point{X: p.X, Y: p.Y - tickLen - 1}, t.Label, text.XCenter, text.YTop)
			case Top:
				p := vg.Point{X: plot.Min.X + d, Y: plot.Max.Y}
				tick(p, vg.Point{X: p.X, Y: p.Y + tickLen})
				label(vg.Point{X: p.X, Y: p.Y + tickLen + 1}, t.Label, text.XCenter, text.YBottom)
			}
		}
		if l := a.Label(); l != "" {
			switch side {
			case Left:
				title(vg.Point{X: 1, Y: center.Y}, l, math.Pi/2)
			case Right:
				title(vg.Point{X: c.surface.W - 1, Y: center.Y}, l, -math.Pi/2)
			case Bottom:
				prims = append(prims, Text{Pos: vg.Point{X: center.X, Y: 1}, Text: l, Color: c.palette.Title, Size: titleFontSize, XAlign: text.XCenter, YAlign: text.YBottom})
			case Top:
				title(vg.Point{X: center.X, Y: c.surface.H - 1}, l, 0)
			}
		}
	}
	if c.title != "" && !c.axes[Top].Enabled() {
		title(vg.Point{X: center.X, Y: c.surface.H - 1}, c.title, 0)
	}
	return prims
}
