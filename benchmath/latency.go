// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"math"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"

	"github.com/benchviz/resultanalyzer/benchseries"
)

const (
	// Request durations are recorded in microseconds, up to an hour,
	// with three significant digits.
	latencyResolution = 1e6
	latencyMaxMicros  = 3600 * 1e6
	latencySigFigs    = 3
)

// Latency summarizes the response times of a request series.
// Durations are in seconds.
type Latency struct {
	N      int
	Failed int

	Mean          float64
	P50, P90, P99 float64
	Max           float64
}

// FailureRatio returns the fraction of requests that failed.
func (l Latency) FailureRatio() float64 {
	if l.N == 0 {
		return 0
	}
	return float64(l.Failed) / float64(l.N)
}

// LatencyOf computes latency percentiles of requests using an HDR
// histogram. Durations beyond an hour are recorded as an hour.
func LatencyOf(requests []benchseries.RequestObservation) (Latency, error) {
	if len(requests) == 0 {
		return Latency{}, ErrEmptySample
	}
	h := hdrhistogram.New(1, latencyMaxMicros, latencySigFigs)
	l := Latency{N: len(requests)}
	for _, r := range requests {
		if r.Failed() {
			l.Failed++
		}
		us := int64(math.Round(r.Duration * latencyResolution))
		if us < 0 {
			us = 0
		} else if us > latencyMaxMicros {
			us = latencyMaxMicros
		}
		if err := h.RecordValue(us); err != nil {
			return Latency{}, err
		}
	}
	sec := func(us int64) float64 { return float64(us) / latencyResolution }
	l.Mean = h.Mean() / latencyResolution
	l.P50 = sec(h.ValueAtQuantile(50))
	l.P90 = sec(h.ValueAtQuantile(90))
	l.P99 = sec(h.ValueAtQuantile(99))
	l.Max = sec(h.Max())
	return l, nil
}
