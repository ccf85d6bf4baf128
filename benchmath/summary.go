// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"fmt"
	"math"
	"slices"

	"github.com/aclements/go-moremath/mathx"
	"github.com/aclements/go-moremath/stats"
)

// A Summary describes the distribution of a set of values.
type Summary struct {
	N int

	Min, Max     float64
	Mean, StdDev float64

	// Q1, Median, Q3 and P95 are interpolated quantiles.
	Q1, Median, Q3 float64
	P95            float64
}

// Summarize computes a Summary of values. values is not modified.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptySample
	}
	xs := slices.Clone(values)
	slices.Sort(xs)
	s := stats.Sample{Xs: xs, Sorted: true}

	sum := Summary{
		N:      len(xs),
		Mean:   s.Mean(),
		Q1:     s.Quantile(0.25),
		Median: s.Quantile(0.5),
		Q3:     s.Quantile(0.75),
		P95:    s.Quantile(0.95),
	}
	sum.Min, sum.Max = s.Bounds()
	if len(xs) > 1 {
		sum.StdDev = s.StdDev()
	}
	return sum, nil
}

// IQR returns the interpolated interquartile range.
func (s Summary) IQR() float64 {
	return s.Q3 - s.Q1
}

// SpreadString returns the larger of the distances from the mean to
// the minimum and maximum as a signed percentage of the mean, for
// example "±12%".
func (s Summary) SpreadString() string {
	if s.Mean == 0 {
		return ""
	}
	d := math.Max(s.Max-s.Mean, s.Mean-s.Min)
	return fmt.Sprintf("±%.0f%%", 100*d/math.Abs(s.Mean))
}

// A Comparison is the result of comparing two samples.
type Comparison struct {
	// P is the p-value of the Mann-Whitney U-test that the two
	// samples come from distributions with the same location.
	P float64
	// N1, N2 are the sizes of the two samples.
	N1, N2 int
	// Delta is the relative change in median from the first sample
	// to the second, or NaN if it is undefined.
	Delta float64
}

// Significant reports whether P is below alpha.
func (c Comparison) Significant(alpha float64) bool {
	return c.P < alpha
}

// Direction returns -1 if the second sample's median is lower, +1 if
// it is higher, and 0 if it is unchanged or undefined.
func (c Comparison) Direction() float64 {
	if math.IsNaN(c.Delta) {
		return 0
	}
	return mathx.Sign(c.Delta)
}

func (c Comparison) String() string {
	if math.IsNaN(c.Delta) {
		return fmt.Sprintf("~ (p=%.3f n=%d+%d)", c.P, c.N1, c.N2)
	}
	return fmt.Sprintf("%+.2f%% (p=%.3f n=%d+%d)", c.Delta*100, c.P, c.N1, c.N2)
}

// Compare tests whether two samples, for example the latencies of the
// Small and Large variants of one service, differ in location.
//
// Identical samples are not an error: they compare with P = 1.
func Compare(a, b []float64) (Comparison, error) {
	if len(a) == 0 || len(b) == 0 {
		return Comparison{}, ErrEmptySample
	}
	c := Comparison{N1: len(a), N2: len(b), Delta: math.NaN()}
	res, err := stats.MannWhitneyUTest(a, b, stats.LocationDiffers)
	switch err {
	case nil:
		c.P = res.P
	case stats.ErrSamplesEqual:
		c.P = 1
	default:
		return Comparison{}, err
	}
	ma := stats.Sample{Xs: a}.Quantile(0.5)
	mb := stats.Sample{Xs: b}.Quantile(0.5)
	if ma != 0 {
		c.Delta = (mb - ma) / ma
	}
	return c, nil
}
