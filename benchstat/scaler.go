// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"strconv"

	"github.com/benchviz/resultanalyzer/benchunit"
)

// A Scaler is a function that scales and formats a measurement.
// All measurements within a given table row are formatted
// using the same scaler, so that the units are consistent
// across the row.
type Scaler func(float64) string

// NewScaler returns a Scaler appropriate for formatting values in
// the range of vals, which have the given unit. For example, memory
// in "kb" is formatted in KiB, MiB or GiB.
func NewScaler(vals []float64, unit string) Scaler {
	return benchunit.NewFormatter(vals, unit).FormatUnit
}

// rawScaler formats values exactly, for output meant for other
// programs.
func rawScaler(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// percent formats a ratio as a percentage.
func percent(r float64) string {
	return strconv.FormatFloat(100*r, 'f', 1, 64) + "%"
}
