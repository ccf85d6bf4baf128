// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	// Register the formats Encode supports.
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// A Size is a width and height in device units (points).
type Size struct {
	W, H vg.Length
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", float64(s.W), float64(s.H))
}

// A Primitive is a single drawing instruction of a Scene. Device
// coordinates have their origin at the lower-left corner of the
// surface.
type Primitive interface {
	// Draw replays the primitive onto c.
	Draw(c *draw.Canvas)
}

// A Rect is an axis-aligned rectangle. A nil Fill leaves the interior
// unpainted, and a zero Width draws no outline.
type Rect struct {
	Min, Max vg.Point
	Fill     color.Color
	Stroke   color.Color
	Width    vg.Length
}

func (r Rect) corners() []vg.Point {
	return []vg.Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}

func (r Rect) Draw(c *draw.Canvas) {
	if r.Fill != nil {
		c.FillPolygon(r.Fill, r.corners())
	}
	if r.Width > 0 && r.Stroke != nil {
		pts := append(r.corners(), r.Min)
		c.StrokeLines(draw.LineStyle{Color: r.Stroke, Width: r.Width}, pts)
	}
}

// A Line is a straight stroke between two points.
type Line struct {
	From, To vg.Point
	Color    color.Color
	Width    vg.Length
}

func (l Line) Draw(c *draw.Canvas) {
	c.StrokeLines(draw.LineStyle{Color: l.Color, Width: l.Width}, []vg.Point{l.From, l.To})
}

// A Polyline is a connected sequence of strokes.
type Polyline struct {
	Points []vg.Point
	Color  color.Color
	Width  vg.Length
}

func (p Polyline) Draw(c *draw.Canvas) {
	if len(p.Points) < 2 {
		return
	}
	c.StrokeLines(draw.LineStyle{Color: p.Color, Width: p.Width}, p.Points)
}

// A Glyph is a marker centered on a point.
type Glyph struct {
	Pos    vg.Point
	Color  color.Color
	Radius vg.Length
	Shape  draw.GlyphDrawer
}

func (g Glyph) Draw(c *draw.Canvas) {
	c.DrawGlyphNoClip(draw.GlyphStyle{Color: g.Color, Radius: g.Radius, Shape: g.Shape}, g.Pos)
}

// A Text is a label anchored at a point. XAlign and YAlign place the
// anchor relative to the text, as in gonum's text.Style, and Rotation
// is in radians around the anchor.
type Text struct {
	Pos      vg.Point
	Text     string
	Color    color.Color
	Size     vg.Length
	XAlign   text.XAlignment
	YAlign   text.YAlignment
	Rotation float64
}

func (t Text) Draw(c *draw.Canvas) {
	sty := text.Style{
		Color:    t.Color,
		Font:     font.From(plot.DefaultFont, t.Size),
		Rotation: t.Rotation,
		XAlign:   t.XAlign,
		YAlign:   t.YAlign,
		Handler:  plot.DefaultTextHandler,
	}
	c.FillText(sty, t.Pos, t.Text)
}

// A LayerKind identifies the role of a Layer in a Scene.
type LayerKind int

const (
	BackgroundLayer LayerKind = iota
	MinorGridLayer
	MajorGridLayer
	BorderLayer
	AxesLayer
	SeriesLayer
)

func (k LayerKind) String() string {
	switch k {
	case BackgroundLayer:
		return "background"
	case MinorGridLayer:
		return "minor grid"
	case MajorGridLayer:
		return "major grid"
	case BorderLayer:
		return "border"
	case AxesLayer:
		return "axes"
	case SeriesLayer:
		return "series"
	}
	return fmt.Sprintf("LayerKind(%d)", int(k))
}

// A Layer is a group of primitives drawn together. Series layers are
// named after the renderer that drew them.
type Layer struct {
	Kind       LayerKind
	Name       string
	Primitives []Primitive
}

// A Scene is a composed chart: an ordered list of layers over a
// surface of the given size. Later layers draw over earlier ones.
type Scene struct {
	Size   Size
	Layers []Layer
}

// Layer returns the first layer of kind k, or nil.
func (s *Scene) Layer(k LayerKind) *Layer {
	for i := range s.Layers {
		if s.Layers[i].Kind == k {
			return &s.Layers[i]
		}
	}
	return nil
}

// Series returns the layer drawn by the named renderer, or nil.
func (s *Scene) Series(name string) *Layer {
	for i := range s.Layers {
		if s.Layers[i].Kind == SeriesLayer && s.Layers[i].Name == name {
			return &s.Layers[i]
		}
	}
	return nil
}

// Primitives returns every primitive of s in drawing order.
func (s *Scene) Primitives() []Primitive {
	var out []Primitive
	for _, l := range s.Layers {
		out = append(out, l.Primitives...)
	}
	return out
}

// Draw replays s onto c, placing the scene's origin at c's lower-left
// corner.
func (s *Scene) Draw(c draw.Canvas) {
	c.Push()
	defer c.Pop()
	c.Translate(c.Min)
	dc := draw.NewCanvas(c.Canvas, s.Size.W, s.Size.H)
	for _, p := range s.Primitives() {
		p.Draw(&dc)
	}
}

// Encode renders s in the given image format ("svg", "png", "pdf",
// ...) and writes it to w.
func (s *Scene) Encode(w io.Writer, format string) (int64, error) {
	cw, err := draw.NewFormattedCanvas(s.Size.W, s.Size.H, format)
	if err != nil {
		return 0, err
	}
	s.Draw(draw.New(cw))
	return cw.WriteTo(w)
}
