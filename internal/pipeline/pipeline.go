// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline turns benchmark result files into charts.
//
// The stages are Load, Prepare, Charts and Write. Each stage fails
// with a *StageError naming the stage and the file or chart that
// failed.
package pipeline

import (
	"fmt"

	"github.com/benchviz/resultanalyzer/benchchart"
	"github.com/benchviz/resultanalyzer/benchfmt"
	"github.com/benchviz/resultanalyzer/benchmath"
	"github.com/benchviz/resultanalyzer/benchseries"
)

// Stages of the pipeline.
const (
	StageLoad    = "load"
	StageReject  = "reject outliers"
	StageCompose = "compose"
	StageWrite   = "write"
)

// A StageError reports the failure of one pipeline stage for one
// subject: a file for loading, a series for outlier rejection, and a
// chart for composing and writing.
type StageError struct {
	Stage   string
	Subject string
	Err     error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Subject, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Options control Prepare and Charts.
type Options struct {
	// Base is the configuration every chart starts from. Charts
	// adds the axes and renderers.
	Base benchchart.Config

	// Filter selects the series to chart. Every predicate must
	// hold.
	Filter []func(*benchseries.Series) bool

	// RejectOutliers drops outlying observations from each series
	// before charting.
	RejectOutliers bool

	// Warn reports rejected outliers and skipped charts. It may be
	// nil.
	Warn func(format string, args ...interface{})
}

func (o *Options) warn(format string, args ...interface{}) {
	if o.Warn != nil {
		o.Warn(format, args...)
	}
}

// Load reads one series from each path. Paths may be of the form
// label=path to override the series name.
func Load(paths []string) ([]*benchseries.Series, error) {
	files := benchfmt.Files{Paths: paths, AllowLabels: true}
	var out []*benchseries.Series
	for files.Scan() {
		out = append(out, files.Series())
	}
	if err := files.Err(); err != nil {
		return nil, &StageError{StageLoad, paths[len(out)], err}
	}
	return out, nil
}

// Prepare selects the series to chart and, if requested, rejects
// their outliers. The input series are not modified.
func Prepare(series []*benchseries.Series, opts Options) ([]*benchseries.Series, error) {
	series = benchseries.Select(series, opts.Filter...)
	if !opts.RejectOutliers {
		return series, nil
	}
	out := make([]*benchseries.Series, 0, len(series))
	for _, s := range series {
		kept, n, err := benchmath.RejectOutliers(s)
		if err != nil {
			return nil, &StageError{StageReject, s.Header.String(), err}
		}
		if n > 0 {
			opts.warn("%s: rejected %d outliers", s.Header, n)
		}
		out = append(out, kept)
	}
	return out, nil
}
