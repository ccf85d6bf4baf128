// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	for _, test := range []struct {
		in   string
		want color.NRGBA
	}{
		{"#190623", color.NRGBA{0x19, 0x06, 0x23, 0xff}},
		{"b58fb0", color.NRGBA{0xb5, 0x8f, 0xb0, 0xff}},
		{"#DD226080", color.NRGBA{0xdd, 0x22, 0x60, 0x80}},
	} {
		got, err := ParseHexColor(test.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", test.in, got, test.want)
		}
	}
	for _, bad := range []string{"", "#", "#12345", "#1234567", "#gg0000"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) succeeded", bad)
		}
	}
}

func TestHexColor(t *testing.T) {
	if got := HexColor(mustHex("#f7edfc")); got != "#f7edfc" {
		t.Errorf("HexColor = %q", got)
	}
	if got := HexColor(color.NRGBA{0xff, 0, 0, 0x80}); got != "#ff000080" {
		t.Errorf("HexColor = %q", got)
	}
}

func TestDefaultPalette(t *testing.T) {
	if name, ok := DefaultPalette().complete(); !ok {
		t.Errorf("default palette is missing %s", name)
	}
	p := DefaultPalette()
	p.MinorLine = nil
	if name, ok := p.complete(); ok || name != "minor line" {
		t.Errorf("complete() = %q, %v", name, ok)
	}
}

func TestSeriesColors(t *testing.T) {
	if SeriesColors(0) != nil {
		t.Error("SeriesColors(0) != nil")
	}
	cs := SeriesColors(11)
	if len(cs) != 11 {
		t.Fatalf("got %d colors", len(cs))
	}
	if cs[0] == cs[1] {
		t.Error("first two colors are equal")
	}
	if cs[9] != cs[0] || cs[10] != cs[1] {
		t.Error("colors do not cycle after 9")
	}
}
