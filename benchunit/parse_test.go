// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "testing"

func TestClassOf(t *testing.T) {
	test := func(unit string, cls Class) {
		t.Helper()
		got := ClassOf(unit)
		if got != cls {
			t.Errorf("for %s, want %s, got %s", unit, cls, got)
		}
	}
	test("s", Decimal)
	test("sec", Decimal)
	test("sec/B", Decimal)
	test("req/sec", Decimal)

	test("kb", Binary)
	test("B", Binary)
	test("KiB", Binary)
	test("bytes/op", Binary)
	test("rss-kb", Binary)
	test("B/sec", Binary)
}
