// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/palette/brewer"
)

// A Palette names the colors of a chart's fixed elements.
type Palette struct {
	Background color.Color
	Axis       color.Color
	MajorLine  color.Color
	MinorLine  color.Color
	Title      color.Color
	Unit       color.Color
}

// DefaultPalette returns the dark purple palette charts use unless
// configured otherwise.
func DefaultPalette() Palette {
	return Palette{
		Background: mustHex("#190623"),
		Axis:       mustHex("#412d4b"),
		MajorLine:  mustHex("#b58fb0"),
		MinorLine:  mustHex("#dd2260"),
		Title:      mustHex("#f7edfc"),
		Unit:       mustHex("#f7edfc"),
	}
}

// complete reports the first unset color of p, if any.
func (p Palette) complete() (string, bool) {
	for _, c := range []struct {
		name string
		c    color.Color
	}{
		{"background", p.Background},
		{"axis", p.Axis},
		{"major line", p.MajorLine},
		{"minor line", p.MinorLine},
		{"title", p.Title},
		{"unit", p.Unit},
	} {
		if c.c == nil {
			return c.name, false
		}
	}
	return "", true
}

// ParseHexColor parses a "#rrggbb" or "#rrggbbaa" color. The leading
// '#' is optional.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("bad color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// HexColor formats c as "#rrggbb", or "#rrggbbaa" if c is not opaque.
func HexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func mustHex(s string) color.NRGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func red(alpha uint8) color.Color {
	return color.NRGBA{0xFF, 0, 0, alpha}
}

// SeriesColors returns n distinguishable colors for series, cycling
// through the ColorBrewer Set1 qualitative palette.
func SeriesColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	p, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", 9)
	if err != nil {
		// Set1 is built in.
		panic(err)
	}
	base := p.Colors()
	out := make([]color.Color, n)
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out
}
