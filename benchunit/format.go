// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "strconv"

// A Formatter formats the values of one axis or table column. All
// values share one scale, so tick labels line up and compare at a
// glance.
type Formatter struct {
	scaler Scaler
	factor float64
	unit   string
}

// NewFormatter returns a Formatter for values measured in unit whose
// common scale is chosen to suit vals. vals are in unit, not the
// tidied unit.
func NewFormatter(vals []float64, unit string) *Formatter {
	tidied, factor := tidyUnit(unit)
	scaled := make([]float64, len(vals))
	for i, v := range vals {
		scaled[i] = v * factor
	}
	return &Formatter{
		scaler: CommonScale(scaled, ClassOf(tidied)),
		factor: factor,
		unit:   tidied,
	}
}

// Format formats v, which is in the Formatter's original unit,
// without a unit prefix. The prefix is part of Unit.
func (f *Formatter) Format(v float64) string {
	return strconv.FormatFloat(v*f.factor/f.scaler.Factor, 'f', f.scaler.Prec, 64)
}

// FormatUnit formats v with its prefixed unit, for example
// "1.500 MiB".
func (f *Formatter) FormatUnit(v float64) string {
	if u := f.Unit(); u != "" {
		return f.Format(v) + " " + u
	}
	return f.Format(v)
}

// Unit returns the prefixed, tidied unit of the formatted values.
func (f *Formatter) Unit() string {
	return f.scaler.Unit(f.unit)
}
