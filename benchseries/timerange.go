// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"math"
)

// A Range is a closed interval [Min, Max] on one axis.
//
// The zero Range is (0, 0). Ranges derived from empty data are the
// zero Range, which has no width; a chart cannot scale an axis to it,
// so callers must check Empty before using such a range for layout.
type Range struct {
	Min, Max float64
}

// Width returns r.Max - r.Min.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// Empty reports whether r has zero width.
func (r Range) Empty() bool {
	return !(r.Max > r.Min)
}

// Contains reports whether v lies in r.
func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// Union returns the smallest range covering both r and o.
func (r Range) Union(o Range) Range {
	return Range{math.Min(r.Min, o.Min), math.Max(r.Max, o.Max)}
}

// Pad widens r by frac of its width on both ends. A range with no
// width is widened by frac on both ends instead, so the result is
// never empty for frac > 0.
func (r Range) Pad(frac float64) Range {
	d := r.Width() * frac
	if d == 0 {
		d = frac
	}
	return Range{r.Min - d, r.Max + d}
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// A Ranger can report the time extent a chart must cover to show it.
//
// *Series and Set implement Ranger, so heterogeneous collections of
// memory and request series, and collections of collections, all
// aggregate the same way.
type Ranger interface {
	// TimeRange returns the time extent of the receiver, or the
	// zero Range if it holds no observations.
	TimeRange() Range
}

// TimeRange folds the time ranges of rs into a single range covering
// all of them.
//
// Members whose own range is the zero Range because they hold no
// observations do not contribute. If no member contributes, TimeRange
// returns the zero Range.
func TimeRange(rs ...Ranger) Range {
	var out Range
	seen := false
	for _, r := range rs {
		if r == nil || isEmptyRanger(r) {
			continue
		}
		tr := r.TimeRange()
		if !seen {
			out, seen = tr, true
			continue
		}
		out = out.Union(tr)
	}
	return out
}

// isEmptyRanger reports whether r holds no observations at all. A
// series with a single observation has a zero-width but non-empty
// range and still contributes.
func isEmptyRanger(r Ranger) bool {
	switch r := r.(type) {
	case *Series:
		return r == nil || r.Len() == 0
	case Set:
		for _, m := range r {
			if m != nil && !isEmptyRanger(m) {
				return false
			}
		}
		return true
	}
	return false
}

// A Set is a heterogeneous collection of Rangers: memory series,
// request series, or nested Sets.
type Set []Ranger

// TimeRange returns the range covering every member of s.
func (s Set) TimeRange() Range {
	return TimeRange(s...)
}
