// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries defines the records and series produced by a
// benchmark run: memory samples taken while a service was under load
// and the requests that were sent to it.
//
// A Series is homogeneous: it holds either memory observations or
// request observations, never both. Every kind of series, and any
// collection of them, can report the time range a chart's time axis
// must cover (see Ranger).
package benchseries

// A MemoryObservation is a single memory sample of the service under
// test.
type MemoryObservation struct {
	// Timestamp is the time the sample was taken, in seconds.
	Timestamp float64
	// Kilobytes is the memory footprint at Timestamp.
	Kilobytes float64
}

// A RequestObservation is a single request sent to the service under
// test.
type RequestObservation struct {
	// StartTime is the time the request was sent, in seconds.
	StartTime float64
	// Duration is the time until the response arrived, in seconds.
	Duration float64
	// StatusCode is the HTTP status code of the response.
	StatusCode uint32
}

// End returns the time the response to o arrived.
func (o RequestObservation) End() float64 {
	return o.StartTime + o.Duration
}

// Failed reports whether the response carried an error status.
func (o RequestObservation) Failed() bool {
	return o.StatusCode >= 400
}
