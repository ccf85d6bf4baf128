// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchchart charts and summarizes memory and request benchmark
// results.
//
// Usage:
//
//	benchchart render [-config file] [-o dir|gs://bucket/prefix] [-format svg|png|pdf] file...
//	benchchart stat [-config file] [-format text|csv|html|xlsx] [-sort order] [-o file] file...
//	benchchart save [-driver name] [-dsn source] file...
//	benchchart list [-driver name] [-dsn source]
//	benchchart export [-driver name] [-dsn source] [-o dir] id...
//
// Each input file is a CSV file named <kind>_..._<variant>_<name>.csv,
// where kind is memory or request and variant is Small or Large. A
// file argument of the form label=file replaces the series name with
// label.
//
// Render writes one comparison chart per kind holding every series of
// that kind, and one chart per name and variant overlaying memory and
// request latency on a shared time axis.
//
// Stat prints a table summarizing each series. Large rows are
// compared with the Small row of the same name.
//
// Save stores series in a SQL database, list prints the stored series
// and export writes stored series back out as results files.
package main

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/benchviz/resultanalyzer/benchseries"
	"github.com/benchviz/resultanalyzer/internal/chartconfig"
)

func main() {
	log.SetPrefix("benchchart: ")
	log.SetFlags(0)

	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		log.Fatal(err)
	}
}

// env holds the state shared by all subcommands.
type env struct {
	stdout, stderr io.Writer

	configFile string
	kind       string
	variant    string
	name       string
	noColor    bool

	ok, warning *color.Color
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	e := &env{
		stdout:  stdout,
		stderr:  stderr,
		ok:      color.New(color.FgGreen, color.Bold),
		warning: color.New(color.FgYellow),
	}
	root := &cobra.Command{
		Use:           "benchchart",
		Short:         "Chart and summarize memory and request benchmark results",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if e.noColor {
				e.ok.DisableColor()
				e.warning.DisableColor()
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&e.configFile, "config", "", "read chart settings from YAML `file`")
	pf.StringVar(&e.kind, "kind", "", "only use series of `kind` memory or request")
	pf.StringVar(&e.variant, "variant", "", "only use series of `variant` Small or Large")
	pf.StringVar(&e.name, "name", "", "only use series measuring service `name`")
	pf.BoolVar(&e.noColor, "no-color", false, "disable colored status output")

	root.AddCommand(e.renderCmd(), e.statCmd(), e.saveCmd(), e.listCmd(), e.exportCmd())
	return root
}

// config returns the chart settings from -config, or the defaults.
func (e *env) config() (*chartconfig.File, error) {
	if e.configFile == "" {
		return chartconfig.Default(), nil
	}
	return chartconfig.Load(e.configFile)
}

// filter returns the series predicates selected by -kind, -variant
// and -name.
func (e *env) filter() ([]func(*benchseries.Series) bool, error) {
	var preds []func(*benchseries.Series) bool
	if e.kind != "" {
		k, err := benchseries.ParseKind(e.kind)
		if err != nil {
			return nil, err
		}
		preds = append(preds, benchseries.ByKind(k))
	}
	if e.variant != "" {
		v, err := benchseries.ParseVariant(e.variant)
		if err != nil {
			return nil, err
		}
		preds = append(preds, benchseries.ByVariant(v))
	}
	if e.name != "" {
		preds = append(preds, benchseries.ByName(e.name))
	}
	return preds, nil
}

func (e *env) warn(format string, args ...interface{}) {
	e.warning.Fprintf(e.stderr, "warning: "+format+"\n", args...)
}

func (e *env) status(format string, args ...interface{}) {
	e.ok.Fprintf(e.stderr, format+"\n", args...)
}
