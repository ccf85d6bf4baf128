// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"strings"
	"sync"
)

type tidyEntry struct {
	tidied string
	factor float64
}

var tidyCache sync.Map // unit string -> *tidyEntry

// Tidy normalizes a value with a (possibly pre-scaled) unit into base
// units. Memory becomes "B" and time becomes "sec", so "kb" (the
// driver's kilobytes, which are KiB) is multiplied by 1024 and "ms" by
// 1e-3. It returns the re-scaled value and its new unit. If the value
// is already in base units, it does nothing.
func Tidy(value float64, unit string) (tidiedValue float64, tidiedUnit string) {
	newUnit, factor := tidyUnit(unit)
	return value * factor, newUnit
}

// tidyUnit returns the tidied version of unit and the multiplicative
// factor to convert a value in unit to a value in the tidied unit.
func tidyUnit(unit string) (tidied string, factor float64) {
	// Fast path for the units the benchmark driver writes.
	switch unit {
	case "kb":
		return "B", 1024
	case "s":
		return "sec", 1
	case "B", "sec", "":
		return unit, 1
	}

	if tc, ok := tidyCache.Load(unit); ok {
		tc := tc.(*tidyEntry)
		return tc.tidied, tc.factor
	}
	tidied, factor = tidyUnitUncached(unit)
	tidyCache.Store(unit, &tidyEntry{tidied, factor})
	return
}

var tidyTokens = map[string]tidyEntry{
	"s":     {"sec", 1},
	"ms":    {"sec", 1e-3},
	"us":    {"sec", 1e-6},
	"µs":    {"sec", 1e-6},
	"ns":    {"sec", 1e-9},
	"kb":    {"B", 1 << 10},
	"kib":   {"B", 1 << 10},
	"mb":    {"B", 1e6},
	"mib":   {"B", 1 << 20},
	"bytes": {"B", 1},
}

func tidyUnitUncached(unit string) (tidied string, factor float64) {
	type edit struct {
		pos, len int
		replace  string
	}

	factor = 1
	p := newParser(unit)
	var edits []edit
	for p.next() {
		e, ok := tidyTokens[strings.ToLower(p.tok)]
		if !ok {
			continue
		}
		edits = append(edits, edit{p.pos, len(p.tok), e.tidied})
		if p.denom {
			factor /= e.factor
		} else {
			factor *= e.factor
		}
	}
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		unit = unit[:e.pos] + e.replace + unit[e.pos+e.len:]
	}
	return unit, factor
}
