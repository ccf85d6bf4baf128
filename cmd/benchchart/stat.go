// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/benchviz/resultanalyzer/benchstat"
	"github.com/benchviz/resultanalyzer/internal/pipeline"
)

type statFlags struct {
	format         string
	sort           string
	out            string
	alpha          float64
	rejectOutliers bool
}

var statFormats = map[string]func(io.Writer, *benchstat.Table) error{
	"text": benchstat.FormatText,
	"csv":  benchstat.FormatCSV,
	"html": benchstat.FormatHTML,
	"xlsx": benchstat.WriteXLSX,
}

func (e *env) statCmd() *cobra.Command {
	var f statFlags
	cmd := &cobra.Command{
		Use:   "stat file...",
		Short: "Summarize series in a table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.stat(cmd, args, &f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.format, "format", "text", "output `format`: text, csv, html or xlsx")
	fl.StringVar(&f.sort, "sort", "", "sort rows by `order` name, variant or mean; prefix - to reverse (default from -config, or name)")
	fl.StringVarP(&f.out, "out", "o", "", "write the table to `file` instead of standard output")
	fl.Float64Var(&f.alpha, "alpha", 0.05, "consider changes significant if p < `α`")
	fl.BoolVar(&f.rejectOutliers, "reject-outliers", false, "drop outlying observations before summarizing")
	return cmd
}

func (e *env) stat(cmd *cobra.Command, args []string, f *statFlags) error {
	format, ok := statFormats[f.format]
	if !ok {
		return fmt.Errorf("unknown format %q: want text, csv, html or xlsx", f.format)
	}
	conf, err := e.config()
	if err != nil {
		return err
	}
	order := conf.Sort
	if cmd.Flags().Changed("sort") {
		order = f.sort
	}
	sortFunc, ok := benchstat.ParseSort(order)
	if !ok {
		return fmt.Errorf("unknown sort order %q", order)
	}
	reject := conf.RejectOutliers
	if cmd.Flags().Changed("reject-outliers") {
		reject = f.rejectOutliers
	}
	preds, err := e.filter()
	if err != nil {
		return err
	}

	series, err := pipeline.Load(args)
	if err != nil {
		return err
	}
	series, err = pipeline.Prepare(series, pipeline.Options{Filter: preds})
	if err != nil {
		return err
	}
	t, err := benchstat.New(series, benchstat.Options{
		RejectOutliers: reject,
		Alpha:          f.alpha,
		Warn:           e.warn,
	})
	if err != nil {
		return err
	}
	benchstat.SortTable(t, sortFunc)

	if f.out == "" {
		return format(e.stdout, t)
	}
	out, err := os.Create(f.out)
	if err != nil {
		return err
	}
	if err := format(out, t); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	e.status("wrote %s", f.out)
	return nil
}
