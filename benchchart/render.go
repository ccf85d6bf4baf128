// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/benchviz/resultanalyzer/benchseries"
)

// A Renderer draws one series of a chart.
type Renderer interface {
	// Render draws onto s, using ax to map data values into the
	// plot area.
	Render(ax Axes, s *Surface) error
}

// RendererFunc adapts a function to a Renderer.
type RendererFunc func(ax Axes, s *Surface) error

func (f RendererFunc) Render(ax Axes, s *Surface) error {
	return f(ax, s)
}

// MemoryLine draws a memory series as a line of kilobytes over time.
type MemoryLine struct {
	Series *benchseries.Series
	Color  color.Color
	Width  vg.Length

	// MarkPeak adds a PeakGlyph at the series' largest sample.
	MarkPeak bool
}

func (m MemoryLine) Render(ax Axes, s *Surface) error {
	if m.Series == nil || m.Series.Kind != benchseries.Memory {
		return fmt.Errorf("memory line needs a memory series")
	}
	if !(m.Width >= 0) {
		return configErrorf("memory line", "width %v must not be negative", float64(m.Width))
	}
	if m.Series.Len() == 0 {
		return nil
	}
	width := m.Width
	if width == 0 {
		width = 2
	}
	pts := ax.MapXYs(m.Series.Points())
	if len(pts) == 1 {
		s.Glyph(pts[0], m.Color, width*2, draw.CircleGlyph{})
	} else {
		s.Polyline(pts, m.Color, width)
	}
	if m.MarkPeak {
		peak := 0
		for i := range pts {
			if m.Series.Value(i) > m.Series.Value(peak) {
				peak = i
			}
		}
		s.Glyph(pts[peak], m.Color, 4*width, PeakGlyph{})
	}
	return nil
}

// RequestScatter draws a request series as one point per request at
// its start time and duration. Failed requests are drawn as crosses.
type RequestScatter struct {
	Series *benchseries.Series
	Color  color.Color
	Radius vg.Length

	// FailedColor colors failed requests. If nil, they are red.
	FailedColor color.Color
}

func (r RequestScatter) Render(ax Axes, s *Surface) error {
	if r.Series == nil || r.Series.Kind != benchseries.Request {
		return fmt.Errorf("request scatter needs a request series")
	}
	if !(r.Radius >= 0) {
		return configErrorf("request scatter", "radius %v must not be negative", float64(r.Radius))
	}
	radius := r.Radius
	if radius == 0 {
		radius = 1.5
	}
	failed := r.FailedColor
	if failed == nil {
		failed = red(0xFF)
	}
	for _, o := range r.Series.Requests() {
		pt := ax.Map(o.StartTime, o.Duration)
		if o.Failed() {
			s.Glyph(pt, failed, 2*radius, CrossGlyph{})
		} else {
			s.Glyph(pt, r.Color, radius, draw.CircleGlyph{})
		}
	}
	return nil
}

// SeriesRenderer returns the renderer for s drawn in color c.
func SeriesRenderer(s *benchseries.Series, c color.Color) Renderer {
	switch s.Kind {
	case benchseries.Memory:
		return MemoryLine{Series: s, Color: c, MarkPeak: true}
	case benchseries.Request:
		return RequestScatter{Series: s, Color: c}
	}
	return RendererFunc(func(Axes, *Surface) error {
		return fmt.Errorf("series %s: %w %s", s.Header, benchseries.ErrUnknownKind, s.Kind)
	})
}
