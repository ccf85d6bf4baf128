// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath provides the statistics used to chart and
// summarize benchmark observations: order-preserving partitioning,
// stable keyed sorting, percentiles, interquartile-range outlier
// rejection and sample summaries.
//
// All functions are pure. None of them modify their input, and none
// of them panic on empty or malformed input; they return an error
// instead.
package benchmath

import (
	"cmp"
	"slices"
)

// Partition splits data into the elements for which pred returns
// true and those for which it returns false. pred is passed each
// element's index and value. Both results preserve the order of data,
// and together they hold every element exactly once.
func Partition[T any](data []T, pred func(i int, v T) bool) (match, rest []T) {
	match = make([]T, 0, len(data))
	rest = make([]T, 0)
	for i, v := range data {
		if pred(i, v) {
			match = append(match, v)
		} else {
			rest = append(rest, v)
		}
	}
	return match, rest
}

// SortByKey returns a copy of data sorted ascending by key. Elements
// with equal keys keep their relative order.
func SortByKey[T any, K cmp.Ordered](data []T, key func(T) K) []T {
	out := slices.Clone(data)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return out
}

// IsSortedByKey reports whether data is ascending by key.
func IsSortedByKey[T any, K cmp.Ordered](data []T, key func(T) K) bool {
	return slices.IsSortedFunc(data, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}
