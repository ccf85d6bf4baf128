// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"

	"github.com/benchviz/resultanalyzer/benchseries"
	"github.com/benchviz/resultanalyzer/benchunit"
)

// A Side is an edge of the plot area an axis is drawn along.
type Side int

const (
	Left Side = iota
	Right
	Top
	Bottom

	numSides
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Horizontal reports whether s is the top or bottom edge, which
// carries an x axis.
func (s Side) Horizontal() bool {
	return s == Top || s == Bottom
}

func (s Side) valid() bool {
	return s >= 0 && s < numSides
}

// An AxisSpec describes the axis along one side of the plot area.
//
// The zero AxisSpec, with no title and a zero Range, means "no axis".
type AxisSpec struct {
	Title string
	// Unit is the unit of Range, for example "kb" or "s".
	Unit  string
	Range benchseries.Range
	// Format formats tick values. If nil, ticks are formatted with a
	// common scale chosen for Unit, and the scaled unit is shown next
	// to the title.
	Format func(float64) string
}

// Enabled reports whether a is not the zero "no axis" value.
func (a AxisSpec) Enabled() bool {
	return a.Title != "" || a.Range != (benchseries.Range{})
}

// A Tick is a labelled position along an axis.
type Tick struct {
	Value float64
	Label string
}

// Ticks divides the axis range into n equal intervals and returns the
// n+1 ticks at their boundaries, formatted for display.
func (a AxisSpec) Ticks(n int) []Tick {
	if n <= 0 {
		return nil
	}
	vals := make([]float64, n+1)
	for i := range vals {
		vals[i] = a.Range.Min + float64(i)*a.Range.Width()/float64(n)
	}
	format := a.Format
	if format == nil {
		format = a.formatter().Format
	}
	ticks := make([]Tick, len(vals))
	for i, v := range vals {
		ticks[i] = Tick{v, format(v)}
	}
	return ticks
}

// formatter returns the default tick formatter. The scale is chosen
// from the range ends so that Ticks and Label agree on the prefix.
func (a AxisSpec) formatter() *benchunit.Formatter {
	return benchunit.NewFormatter([]float64{a.Range.Min, a.Range.Max}, a.Unit)
}

// Label returns the axis title with its unit, for example
// "memory (MiB)".
func (a AxisSpec) Label() string {
	unit := a.Unit
	if a.Format == nil && a.Unit != "" {
		unit = a.formatter().Unit()
	}
	switch {
	case unit == "":
		return a.Title
	case a.Title == "":
		return unit
	}
	return fmt.Sprintf("%s (%s)", a.Title, unit)
}
