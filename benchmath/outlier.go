// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"fmt"
	"slices"

	"github.com/benchviz/resultanalyzer/benchseries"
)

// OutlierFactor scales the interquartile range to give the distance of
// the outlier fences from the quartiles.
const OutlierFactor = 1.5

// Bounds are the inclusive fences outside which a value is an outlier.
type Bounds struct {
	Q1, Q3       float64
	Lower, Upper float64
}

// IQR returns the interquartile range the bounds were computed from.
func (b Bounds) IQR() float64 {
	return b.Q3 - b.Q1
}

// Contains reports whether v lies within both fences.
func (b Bounds) Contains(v float64) bool {
	return b.Lower <= v && v <= b.Upper
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g, %g]", b.Lower, b.Upper)
}

// OutlierBounds computes the interquartile-range fences of sorted,
// which must be ascending by key. Q1 and Q3 are the 25th and 75th
// percentiles as computed by Percentile, and the fences lie
// OutlierFactor interquartile ranges below Q1 and above Q3.
func OutlierBounds[T any](sorted []T, key func(T) float64) (Bounds, error) {
	p25, err := PercentileBy(0.25, sorted, key)
	if err != nil {
		return Bounds{}, err
	}
	p75, err := Percentile(0.75, sorted)
	if err != nil {
		return Bounds{}, err
	}
	q1, q3 := key(p25), key(p75)
	iqr := q3 - q1
	return Bounds{
		Q1:    q1,
		Q3:    q3,
		Lower: q1 - OutlierFactor*iqr,
		Upper: q3 + OutlierFactor*iqr,
	}, nil
}

// OutlierPartition splits sorted into the elements whose key lies
// within the OutlierBounds of sorted and the outliers. An element is
// kept only if it is at or above the lower fence and at or below the
// upper fence. Both results preserve the order of sorted.
func OutlierPartition[T any](sorted []T, key func(T) float64) (kept, outliers []T, err error) {
	b, err := OutlierBounds(sorted, key)
	if err != nil {
		return nil, nil, err
	}
	kept, outliers = Partition(sorted, func(_ int, v T) bool {
		return b.Contains(key(v))
	})
	return kept, outliers, nil
}

// RejectOutliers returns s without the observations whose value lies
// outside the OutlierBounds of all its values, and the number
// removed. The result keeps time order. An empty series is returned
// unchanged.
func RejectOutliers(s *benchseries.Series) (*benchseries.Series, int, error) {
	if s.Len() == 0 {
		return s, 0, nil
	}
	vs := s.Values()
	slices.Sort(vs)
	b, err := OutlierBounds(vs, func(v float64) float64 { return v })
	if err != nil {
		return nil, 0, err
	}
	kept := s.Filter(func(i int) bool { return b.Contains(s.Value(i)) })
	return kept, s.Len() - kept.Len(), nil
}
