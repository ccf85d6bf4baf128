// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"sort"
	"strings"
)

// A SortFunc abstracts the sorting interface to compare two rows of a Table
type SortFunc func(*Table, int, int) bool

// ByName sorts tables by series name, then kind, then variant.
func ByName(t *Table, i, j int) bool {
	a, b := t.Rows[i], t.Rows[j]
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c < 0
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Variant < b.Variant
}

// ByVariant sorts tables by variant, Small before Large, then by name.
func ByVariant(t *Table, i, j int) bool {
	a, b := t.Rows[i], t.Rows[j]
	if a.Variant != b.Variant {
		return a.Variant < b.Variant
	}
	return ByName(t, i, j)
}

// ByMean sorts tables by the mean value. Memory rows sort before
// request rows, since their units differ.
func ByMean(t *Table, i, j int) bool {
	a, b := t.Rows[i], t.Rows[j]
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Mean < b.Mean
}

// SortReverse returns a SortFunc that is the reverse of the input SortFunc
func SortReverse(sortFunc SortFunc) SortFunc {
	return func(t *Table, i, j int) bool { return sortFunc(t, j, i) }
}

// SortTable sorts a Table t (in place) by the given SortFunc. Rows
// that compare equal keep their order.
func SortTable(t *Table, sortFunc SortFunc) {
	sort.SliceStable(t.Rows, func(i, j int) bool { return sortFunc(t, i, j) })
}

// sortFuncs maps the names accepted by ParseSort to SortFuncs.
var sortFuncs = map[string]SortFunc{
	"name":    ByName,
	"variant": ByVariant,
	"mean":    ByMean,
}

// ParseSort parses a sort order name such as "mean", optionally
// prefixed with "-" to reverse it.
func ParseSort(s string) (SortFunc, bool) {
	name, reverse := strings.CutPrefix(s, "-")
	f, ok := sortFuncs[name]
	if !ok {
		return nil, false
	}
	if reverse {
		f = SortReverse(f)
	}
	return f, true
}
