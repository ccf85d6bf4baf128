// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"errors"
	"image/color"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/benchviz/resultanalyzer/benchseries"
)

var testAxes = Axes{
	X:    benchseries.Range{Min: 0, Max: 10},
	Y:    benchseries.Range{Min: 0, Max: 100},
	Plot: vg.Rectangle{Max: vg.Point{X: 100, Y: 100}},
}

func TestMemoryLine(t *testing.T) {
	s := benchseries.NewMemory("m", benchseries.Small, []benchseries.MemoryObservation{
		{Timestamp: 5, Kilobytes: 80},
		{Timestamp: 0, Kilobytes: 10},
		{Timestamp: 10, Kilobytes: 20},
	})
	var surf Surface
	if err := (MemoryLine{Series: s, Color: color.White, MarkPeak: true}).Render(testAxes, &surf); err != nil {
		t.Fatal(err)
	}
	if surf.Len() != 2 {
		t.Fatalf("got %d primitives, want a line and a peak", surf.Len())
	}
	line := surf.prims[0].(Polyline)
	want := []vg.Point{{X: 0, Y: 10}, {X: 50, Y: 80}, {X: 100, Y: 20}}
	for i, p := range want {
		if line.Points[i] != p {
			t.Errorf("point %d = %v, want %v", i, line.Points[i], p)
		}
	}
	if line.Width != 2 {
		t.Errorf("default width = %v, want 2", line.Width)
	}
	peak := surf.prims[1].(Glyph)
	if _, ok := peak.Shape.(PeakGlyph); !ok || peak.Pos != want[1] {
		t.Errorf("peak glyph = %+v", peak)
	}
}

func TestMemoryLineSinglePoint(t *testing.T) {
	s := benchseries.NewMemory("m", benchseries.Small, []benchseries.MemoryObservation{{Timestamp: 5, Kilobytes: 50}})
	var surf Surface
	if err := (MemoryLine{Series: s, Color: color.White}).Render(testAxes, &surf); err != nil {
		t.Fatal(err)
	}
	g, ok := surf.prims[0].(Glyph)
	if !ok {
		t.Fatalf("single point drawn as %T", surf.prims[0])
	}
	if _, ok := g.Shape.(draw.CircleGlyph); !ok {
		t.Errorf("single point shape %T", g.Shape)
	}

	var empty Surface
	s = benchseries.NewMemory("m", benchseries.Small, nil)
	if err := (MemoryLine{Series: s}).Render(testAxes, &empty); err != nil || empty.Len() != 0 {
		t.Errorf("empty series: %d primitives, %v", empty.Len(), err)
	}
}

func TestRequestScatter(t *testing.T) {
	s := benchseries.NewRequest("r", benchseries.Large, []benchseries.RequestObservation{
		{StartTime: 2, Duration: 30, StatusCode: 200},
		{StartTime: 4, Duration: 60, StatusCode: 404},
	})
	var surf Surface
	if err := SeriesRenderer(s, color.White).Render(testAxes, &surf); err != nil {
		t.Fatal(err)
	}
	ok := surf.prims[0].(Glyph)
	if ok.Pos != (vg.Point{X: 20, Y: 30}) || ok.Radius != 1.5 || ok.Color != color.White {
		t.Errorf("ok request = %+v", ok)
	}
	bad := surf.prims[1].(Glyph)
	if _, isCross := bad.Shape.(CrossGlyph); !isCross || bad.Pos != (vg.Point{X: 40, Y: 60}) {
		t.Errorf("failed request = %+v", bad)
	}
	if bad.Color != red(0xFF) {
		t.Errorf("failed request color = %v", bad.Color)
	}
}

func TestRendererKindMismatch(t *testing.T) {
	mem := benchseries.NewMemory("m", benchseries.Small, []benchseries.MemoryObservation{{Timestamp: 0, Kilobytes: 1}})
	req := benchseries.NewRequest("r", benchseries.Small, []benchseries.RequestObservation{{StartTime: 0, Duration: 1, StatusCode: 200}})
	var surf Surface
	if err := (MemoryLine{Series: req}).Render(testAxes, &surf); err == nil {
		t.Error("MemoryLine drew a request series")
	}
	if err := (RequestScatter{Series: mem}).Render(testAxes, &surf); err == nil {
		t.Error("RequestScatter drew a memory series")
	}

	odd := &benchseries.Series{Header: benchseries.Header{Kind: benchseries.Kind(42), Name: "x"}}
	if err := SeriesRenderer(odd, color.White).Render(testAxes, &surf); !errors.Is(err, benchseries.ErrUnknownKind) {
		t.Errorf("unknown kind: got %v", err)
	}
}
