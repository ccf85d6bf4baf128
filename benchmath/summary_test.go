// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"errors"
	"math"
	"testing"

	"github.com/benchviz/resultanalyzer/benchseries"
)

func aeq(x, y, tol float64) bool {
	return math.Abs(x-y) <= tol*math.Max(1, math.Abs(y))
}

func TestSummarize(t *testing.T) {
	in := []float64{4, 1, 3, 2, 5}
	s, err := Summarize(in)
	if err != nil {
		t.Fatal(err)
	}
	if s.N != 5 || s.Min != 1 || s.Max != 5 || !aeq(s.Mean, 3, 1e-9) || !aeq(s.Median, 3, 1e-9) {
		t.Errorf("got %+v", s)
	}
	if !aeq(s.StdDev, math.Sqrt(2.5), 1e-9) {
		t.Errorf("StdDev = %v, want %v", s.StdDev, math.Sqrt(2.5))
	}
	if in[0] != 4 {
		t.Errorf("Summarize sorted its input: %v", in)
	}
	if got := s.SpreadString(); got != "±67%" {
		t.Errorf("SpreadString() = %q", got)
	}

	one, err := Summarize([]float64{7})
	if err != nil || one.StdDev != 0 || one.Q1 != 7 || one.P95 != 7 {
		t.Errorf("single value: got %+v, %v", one, err)
	}

	if _, err := Summarize(nil); !errors.Is(err, ErrEmptySample) {
		t.Errorf("empty: got %v", err)
	}
}

func TestCompare(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	b := []float64{11, 12, 13, 14, 15, 16, 17, 18}
	c, err := Compare(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Significant(0.05) || c.Direction() != 1 {
		t.Errorf("disjoint samples: got %v", c)
	}

	c, err = Compare([]float64{2, 2, 2}, []float64{2, 2, 2})
	if err != nil || c.P != 1 || c.Direction() != 0 {
		t.Errorf("equal samples: got %v, %v", c, err)
	}

	if _, err := Compare(nil, a); !errors.Is(err, ErrEmptySample) {
		t.Errorf("empty: got %v", err)
	}
}

func TestLatencyOf(t *testing.T) {
	var reqs []benchseries.RequestObservation
	for i := 1; i <= 100; i++ {
		code := uint32(200)
		if i%10 == 0 {
			code = 500
		}
		reqs = append(reqs, benchseries.RequestObservation{
			StartTime:  float64(i),
			Duration:   float64(i) / 1000,
			StatusCode: code,
		})
	}
	l, err := LatencyOf(reqs)
	if err != nil {
		t.Fatal(err)
	}
	if l.N != 100 || l.Failed != 10 || l.FailureRatio() != 0.1 {
		t.Errorf("counts: got %+v", l)
	}
	for _, c := range []struct {
		name      string
		got, want float64
	}{
		{"P50", l.P50, 0.050},
		{"P90", l.P90, 0.090},
		{"P99", l.P99, 0.099},
		{"Max", l.Max, 0.100},
		{"Mean", l.Mean, 0.0505},
	} {
		if !aeq(c.got, c.want, 1e-2) {
			t.Errorf("%s = %v, want ~%v", c.name, c.got, c.want)
		}
	}

	if _, err := LatencyOf(nil); !errors.Is(err, ErrEmptySample) {
		t.Errorf("empty: got %v", err)
	}
}
