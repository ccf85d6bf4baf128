// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Scaler represents a scaling factor for a number and
// its scientific representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // Unit prefix ("k", "M", "Ki", etc)
}

// Format formats val and appends the unit prefix according to the
// given scale. For example, if the Scaler has class Decimal,
// Format(123456789) returns "123.5M".
//
// If the value has units, be sure to tidy it first (see Tidy).
// Otherwise, this can result in nonsense units such as "kkb".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

// Unit returns unit with the scale's prefix, for example "KiB" or
// "msec".
func (s Scaler) Unit(unit string) string {
	return s.Prefix + unit
}

// NoOpScaler is a Scaler that formats numbers with the smallest
// number of digits necessary to capture the exact value, and no
// prefix. This is intended for when the output will be consumed by
// another program, such as when producing CSV format.
var NoOpScaler = Scaler{-1, 1, ""}

type factor struct {
	factor float64
	prefix string
	// Thresholds for 100.0, 10.00, 1.000.
	t100, t10, t1 float64
}

var (
	siFactors   = mkFactors(10, 3, 12, []string{"T", "G", "M", "k", "", "m", "µ", "n"})
	iecFactors  = mkFactors(2, 10, 40, []string{"Ti", "Gi", "Mi", "Ki", ""})
	sigfigs     = mkSigfigs()
	sigfigsBase = 3
)

// mkFactors returns the factors base^exp, base^(exp-step), ... named
// by prefixes. To make the thresholds match how printing rounds, each
// threshold is the product of the factor and the largest value that
// still rounds down at that precision.
func mkFactors(base, step, exp int, prefixes []string) []factor {
	var factors []factor
	for _, p := range prefixes {
		f := math.Pow(float64(base), float64(exp))
		factors = append(factors, factor{f, p, 99.995 * f, 9.9995 * f, .99995 * f})
		exp -= step
	}
	return factors
}

func mkSigfigs() []float64 {
	// Print up to 10 digits after the decimal place.
	// sigfigs[0] is the threshold for 3 digits after the decimal.
	var sigfigs []float64
	for exp := -1; exp > -9; exp-- {
		thresh, _ := strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
		sigfigs = append(sigfigs, thresh)
	}
	return sigfigs
}

// Scale formats val using at least three significant digits,
// appending an SI or binary prefix. See Scaler.Format for details.
func Scale(val float64, cls Class) string {
	return CommonScale([]float64{val}, cls).Format(val)
}

// CommonScale returns a common Scaler to apply to all values in vals.
// This scale will show at least three significant digits for every
// value.
func CommonScale(vals []float64, cls Class) Scaler {
	// The common scale is determined by the non-zero value
	// closest to zero.
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, 1, ""}
	}

	factors := siFactors
	if cls == Binary {
		factors = iecFactors
	}
	for _, factor := range factors {
		switch {
		case min >= factor.t100:
			return Scaler{1, factor.factor, factor.prefix}
		case min >= factor.t10:
			return Scaler{2, factor.factor, factor.prefix}
		case min >= factor.t1:
			return Scaler{3, factor.factor, factor.prefix}
		}
	}

	// The value is less than the smallest factor. Print it using
	// the smallest factor and more precision to achieve the
	// desired sigfigs.
	factor := factors[len(factors)-1]
	val := min / factor.factor
	for i, thresh := range sigfigs {
		if val >= thresh {
			return Scaler{i + sigfigsBase, factor.factor, factor.prefix}
		}
	}
	return Scaler{len(sigfigs) - 1 + sigfigsBase, factor.factor, factor.prefix}
}
