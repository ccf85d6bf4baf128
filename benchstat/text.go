// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"io"

	"github.com/benchviz/resultanalyzer/internal/texttab"
)

var textHeader = []string{"kind", "variant", "name", "n", "min", "mean", "median", "p95", "max", "outliers", "failed", "vs Small"}

// FormatText writes a text formatting of t to w. Rows are grouped by
// kind, with a rule between the groups.
func FormatText(w io.Writer, t *Table) error {
	var tab texttab.Table
	tab.Row().Cells(textHeader...)
	for i, row := range t.Rows {
		if i == 0 || row.Kind != t.Rows[i-1].Kind {
			tab.Rule()
		}
		tab.Row().Cells(row.Kind.String(), row.Variant.String(), row.Name)
		tab.Cell(itoa(row.N), texttab.Right)
		for _, v := range []float64{row.Min, row.Mean, row.Median, row.P95, row.Max} {
			tab.Cell(row.Scaler(v), texttab.Right)
		}
		tab.Cell(itoa(row.Outliers), texttab.Right)
		failed := ""
		if row.Latency != nil {
			failed = percent(row.FailureRatio)
		}
		tab.Cell(failed, texttab.Right)
		tab.Cell(deltaString(t, row))
	}
	return tab.Format(w)
}

// deltaString formats the comparison of row with its Small
// counterpart: the median change if it is significant, "~" if not, and
// "" if there is nothing to compare with.
func deltaString(t *Table, row *Row) string {
	switch {
	case row.Delta == nil:
		return ""
	case !t.Significant(row):
		return "~"
	}
	return row.Delta.String()
}
