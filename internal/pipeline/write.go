// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"strings"

	"golang.org/x/net/context"

	"github.com/benchviz/resultanalyzer/storage/fs"
)

// Write encodes each chart in format and writes it to fsys as
// Name.format. A chart that fails to encode is removed and stops the
// write; charts written before it are kept.
func Write(ctx context.Context, fsys fs.FS, charts []Chart, format string) ([]string, error) {
	var written []string
	for _, c := range charts {
		name := c.Name + "." + format
		if err := writeChart(ctx, fsys, name, c, format); err != nil {
			return written, &StageError{StageWrite, name, err}
		}
		written = append(written, name)
	}
	return written, nil
}

func writeChart(ctx context.Context, fsys fs.FS, name string, c Chart, format string) error {
	series := make([]string, len(c.Series))
	for i, h := range c.Series {
		series[i] = h.String()
	}
	w, err := fsys.NewWriter(ctx, name, map[string]string{
		"chart":  c.Name,
		"series": strings.Join(series, ","),
	})
	if err != nil {
		return err
	}
	if _, err := c.Scene.Encode(w, format); err != nil {
		w.CloseWithError(err)
		return err
	}
	return w.Close()
}

// Run loads paths, prepares the series and writes every chart to
// fsys. It returns the names of the written files.
func Run(ctx context.Context, fsys fs.FS, paths []string, format string, opts Options) ([]string, error) {
	series, err := Load(paths)
	if err != nil {
		return nil, err
	}
	series, err = Prepare(series, opts)
	if err != nil {
		return nil, err
	}
	charts, err := Charts(series, opts)
	if err != nil {
		return nil, err
	}
	return Write(ctx, fsys, charts, format)
}
