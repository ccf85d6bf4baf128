// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"cmp"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptySample is returned by order statistics of an empty
	// sample.
	ErrEmptySample = errors.New("empty sample")

	// ErrPercentileRange is returned for a percentile outside [0, 1].
	ErrPercentileRange = errors.New("percentile out of range [0, 1]")

	// ErrUnsorted is returned when a function that requires sorted
	// input is given unsorted input.
	ErrUnsorted = errors.New("sample is not sorted")
)

// Percentile returns the element of sorted at index floor(len*k).
//
// k must be in [0, 1]. For k = 1 the index is one past the end, and
// Percentile returns the last element. Percentile does not check that
// sorted is ascending; see PercentileBy.
func Percentile[T any](k float64, sorted []T) (T, error) {
	var zero T
	if math.IsNaN(k) || k < 0 || k > 1 {
		return zero, fmt.Errorf("%w: %v", ErrPercentileRange, k)
	}
	if len(sorted) == 0 {
		return zero, ErrEmptySample
	}
	i := int(math.Floor(float64(len(sorted)) * k))
	if i >= len(sorted) {
		i = len(sorted) - 1
	}
	return sorted[i], nil
}

// PercentileBy is like Percentile, but first verifies that sorted is
// ascending by key and returns ErrUnsorted if it is not.
func PercentileBy[T any, K cmp.Ordered](k float64, sorted []T, key func(T) K) (T, error) {
	if !IsSortedByKey(sorted, key) {
		var zero T
		return zero, ErrUnsorted
	}
	return Percentile(k, sorted)
}
