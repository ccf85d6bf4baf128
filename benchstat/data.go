// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchstat summarizes benchmark series into a table with one
// row per (kind, variant, name), and formats that table as text, CSV,
// HTML or an Excel workbook.
package benchstat

import (
	"fmt"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/benchviz/resultanalyzer/benchmath"
	"github.com/benchviz/resultanalyzer/benchseries"
)

// Options control how a Table is built.
type Options struct {
	// RejectOutliers drops observations outside the outlier fences
	// of their series before summarizing.
	RejectOutliers bool

	// Alpha is the p-value below which a difference between the
	// Small and Large variants is reported. If zero, it defaults
	// to 0.05.
	Alpha float64

	// Warn is called for series that are skipped. If nil, they are
	// skipped silently.
	Warn func(format string, args ...interface{})
}

// A Key identifies the series summarized by one Row. Series that share
// a key, for example the same service loaded from two files, are
// pooled.
type Key struct {
	Kind    benchseries.Kind
	Variant benchseries.Variant
	Name    string
}

func (k Key) String() string {
	return benchseries.Header{Kind: k.Kind, Variant: k.Variant, Name: k.Name}.String()
}

// A Row summarizes the values of one Key. Values are kilobytes for
// memory rows and seconds for request rows.
type Row struct {
	Key
	Unit string

	N int

	Min, Max          float64
	Mean, Median, P95 float64

	// Outliers is the number of observations rejected.
	Outliers int

	// FailureRatio is the fraction of failed requests.
	FailureRatio float64

	// Latency holds HDR histogram percentiles of request rows.
	Latency *benchmath.Latency

	// Delta compares a Large row with the Small row of the same
	// name and kind, if there is one.
	Delta *benchmath.Comparison

	// Scaler formats the values of this row.
	Scaler Scaler
}

// Change returns +1 if the row is significantly larger than its Small
// counterpart, -1 if significantly smaller, and 0 otherwise.
func (r *Row) Change(alpha float64) int {
	if r.Delta == nil || !r.Delta.Significant(alpha) {
		return 0
	}
	return int(r.Delta.Direction())
}

// A Table is a summary of many series.
type Table struct {
	Rows  []*Row
	Alpha float64
}

// Significant reports whether r differs significantly from its Small
// counterpart.
func (t *Table) Significant(r *Row) bool {
	return r.Change(t.Alpha) != 0
}

// New summarizes series. Rows are grouped by kind, then by variant,
// and each group keeps the order in which it was first seen.
func New(series []*benchseries.Series, opts Options) (*Table, error) {
	warn := opts.Warn
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}
	t := &Table{Alpha: opts.Alpha}
	if t.Alpha == 0 {
		t.Alpha = 0.05
	}

	var (
		kinds, variants, names []string
		values, failed         []float64
	)
	outliers := make(map[Key]int)
	samples := make(map[Key][]float64)
	requests := make(map[Key][]benchseries.RequestObservation)
	for _, s := range series {
		if s == nil {
			continue
		}
		key := Key{s.Kind, s.Variant, s.Name}
		if opts.RejectOutliers {
			kept, n, err := benchmath.RejectOutliers(s)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			s = kept
			outliers[key] += n
		}
		if s.Len() == 0 {
			warn("%s: no observations", key)
			continue
		}
		for i := 0; i < s.Len(); i++ {
			kinds = append(kinds, s.Kind.String())
			variants = append(variants, s.Variant.String())
			names = append(names, s.Name)
			values = append(values, s.Value(i))
			f := 0.0
			if s.Kind == benchseries.Request && s.Requests()[i].Failed() {
				f = 1
			}
			failed = append(failed, f)
		}
		samples[key] = append(samples[key], s.Values()...)
		if s.Kind == benchseries.Request {
			requests[key] = append(requests[key], s.Requests()...)
		}
	}
	if len(values) == 0 {
		return t, nil
	}

	obs := table.NewBuilder(nil).
		Add("kind", kinds).
		Add("variant", variants).
		Add("name", names).
		Add("value", values).
		Add("failed", failed).
		Done()
	agg := ggstat.Agg("kind", "variant", "name")(
		ggstat.AggCount("n"),
		ggstat.AggMin("value"),
		ggstat.AggMean("value", "failed"),
		ggstat.AggQuantile("median", 0.5, "value"),
		ggstat.AggQuantile("p95", 0.95, "value"),
		ggstat.AggMax("value"),
	).F(obs)
	sum := table.Flatten(agg)

	var (
		aKind    = sum.MustColumn("kind").([]string)
		aVariant = sum.MustColumn("variant").([]string)
		aName    = sum.MustColumn("name").([]string)
		aN       = sum.MustColumn("n").([]int)
		aMin     = sum.MustColumn("min value").([]float64)
		aMean    = sum.MustColumn("mean value").([]float64)
		aFailed  = sum.MustColumn("mean failed").([]float64)
		aMedian  = sum.MustColumn("median value").([]float64)
		aP95     = sum.MustColumn("p95 value").([]float64)
		aMax     = sum.MustColumn("max value").([]float64)
	)
	for i := range aN {
		kind, err := benchseries.ParseKind(aKind[i])
		if err != nil {
			return nil, err
		}
		variant, err := benchseries.ParseVariant(aVariant[i])
		if err != nil {
			return nil, err
		}
		key := Key{kind, variant, aName[i]}
		row := &Row{
			Key:          key,
			Unit:         kind.Unit(),
			N:            aN[i],
			Min:          aMin[i],
			Mean:         aMean[i],
			Median:       aMedian[i],
			P95:          aP95[i],
			Max:          aMax[i],
			Outliers:     outliers[key],
			FailureRatio: aFailed[i],
		}
		row.Scaler = NewScaler([]float64{row.Min, row.Max}, row.Unit)
		if reqs, ok := requests[key]; ok {
			l, err := benchmath.LatencyOf(reqs)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			row.Latency = &l
		}
		t.Rows = append(t.Rows, row)
	}

	for _, row := range t.Rows {
		if row.Variant != benchseries.Large {
			continue
		}
		base := Key{row.Kind, benchseries.Small, row.Name}
		if _, ok := samples[base]; !ok {
			continue
		}
		c, err := benchmath.Compare(samples[base], samples[row.Key])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", row.Key, err)
		}
		row.Delta = &c
	}
	return t, nil
}
