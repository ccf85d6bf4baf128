// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/benchviz/resultanalyzer/benchseries"
)

// Axes maps data values to device coordinates inside the plot area.
type Axes struct {
	X, Y benchseries.Range
	Plot vg.Rectangle
}

// MapX returns the device x coordinate of data value v:
// offset + (v - min)/(max - min) * width.
func (a Axes) MapX(v float64) vg.Length {
	return a.Plot.Min.X + vg.Length((v-a.X.Min)/a.X.Width())*a.Plot.Size().X
}

// MapY is MapX for the y axis.
func (a Axes) MapY(v float64) vg.Length {
	return a.Plot.Min.Y + vg.Length((v-a.Y.Min)/a.Y.Width())*a.Plot.Size().Y
}

// Map returns the device point of the data point (x, y).
func (a Axes) Map(x, y float64) vg.Point {
	return vg.Point{X: a.MapX(x), Y: a.MapY(y)}
}

// MapXYs maps every point of xys.
func (a Axes) MapXYs(xys plotter.XYer) []vg.Point {
	pts := make([]vg.Point, xys.Len())
	for i := range pts {
		x, y := xys.XY(i)
		pts[i] = a.Map(x, y)
	}
	return pts
}

// A Surface accumulates the primitives a renderer draws. Each renderer
// is given its own Surface, which becomes its layer of the Scene.
type Surface struct {
	prims []Primitive
}

// Add appends p to the surface.
func (s *Surface) Add(p Primitive) {
	s.prims = append(s.prims, p)
}

// Line draws a straight line from a to b.
func (s *Surface) Line(a, b vg.Point, c color.Color, width vg.Length) {
	s.Add(Line{From: a, To: b, Color: c, Width: width})
}

// Polyline draws connected lines through pts.
func (s *Surface) Polyline(pts []vg.Point, c color.Color, width vg.Length) {
	s.Add(Polyline{Points: pts, Color: c, Width: width})
}

// Glyph draws a marker of the given shape at pt.
func (s *Surface) Glyph(pt vg.Point, c color.Color, radius vg.Length, shape draw.GlyphDrawer) {
	s.Add(Glyph{Pos: pt, Color: c, Radius: radius, Shape: shape})
}

// Text draws a label anchored at pt.
func (s *Surface) Text(t Text) {
	s.Add(t)
}

// Len returns the number of primitives drawn so far.
func (s *Surface) Len() int {
	return len(s.prims)
}
