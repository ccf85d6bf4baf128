// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chartconfig

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchviz/resultanalyzer/benchchart"
)

func TestParseDefaults(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), f)

	c, err := f.Chart()
	require.NoError(t, err)
	_, minor := c.MinorGrid()
	assert.False(t, minor)
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(`
title: nightly
surface: {width: 200, height: 100}
plot_area: {width: 100, height: 50}
major_grid: {columns: 4, rows: 2}
minor_grid: {columns: 2, rows: 2}
strokes: {minor: 0.5, major: 1, border: 2}
palette:
  background: "#ffffff"
format: png
reject_outliers: true
sort: -mean
`))
	require.NoError(t, err)

	assert.Equal(t, "nightly", f.Title)
	assert.Equal(t, Size{200, 100}, f.Surface)
	assert.Equal(t, Grid{4, 2}, f.MajorGrid)
	require.NotNil(t, f.MinorGrid)
	assert.Equal(t, Grid{2, 2}, *f.MinorGrid)
	assert.Equal(t, "png", f.Format)
	assert.True(t, f.RejectOutliers)

	c, err := f.Chart()
	require.NoError(t, err)
	g, ok := c.MinorGrid()
	assert.True(t, ok)
	assert.Equal(t, benchchart.Grid{Columns: 2, Rows: 2}, g)

	s, err := c.Compose()
	require.NoError(t, err)
	assert.Equal(t, benchchart.Size{W: 200, H: 100}, s.Size)
	bg := s.Layer(benchchart.BackgroundLayer)
	require.NotNil(t, bg)
	r, ok := bg.Primitives[0].(benchchart.Rect)
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, r.Fill)
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		name, yaml, want string
	}{
		{"unknown field", "colour: red", "field colour not found"},
		{"format", "format: gif", `unknown format "gif"`},
		{"sort", "sort: speed", `unknown sort order "speed"`},
		{"palette", "palette: {axis: blue}", "palette axis"},
		{"syntax", "surface: [", "failed to parse YAML config"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

func TestBadGeometryFailsCompose(t *testing.T) {
	f, err := Parse([]byte("plot_area: {width: 900, height: 100}"))
	require.NoError(t, err)
	c, err := f.Chart()
	require.NoError(t, err)
	_, err = c.Compose()
	assert.ErrorIs(t, err, benchchart.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: from file\n"), 0o644))
	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from file", f.Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
