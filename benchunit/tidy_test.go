// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "testing"

func TestTidy(t *testing.T) {
	test := func(unit, tidied string, factor float64) {
		t.Helper()
		gotFactor, got := Tidy(1, unit)
		if got != tidied || gotFactor != factor {
			t.Errorf("for %s, want *%f %s, got *%f %s", unit, factor, tidied, gotFactor, got)
		}
	}

	test("kb", "B", 1024)
	test("s", "sec", 1)
	test("sec", "sec", 1)
	test("ms", "sec", 1e-3)
	test("KiB", "B", 1024)
	test("MB", "B", 1e6)
	test("rss-kb", "rss-B", 1024)
	test("req/ms", "req/sec", 1e3)
	test("requests", "requests", 1)
}
