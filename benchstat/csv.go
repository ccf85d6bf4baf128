// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"kind", "variant", "name", "unit", "n", "min", "mean", "median", "p95", "max", "outliers", "failure_ratio", "delta", "p"}

// FormatCSV writes t to w as CSV. Values are written exactly, in the
// row's unit, so the output can be consumed by other programs.
func FormatCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	cw.Write(csvHeader)
	for _, row := range t.Rows {
		rec := []string{row.Kind.String(), row.Variant.String(), row.Name, row.Unit, itoa(row.N)}
		for _, v := range []float64{row.Min, row.Mean, row.Median, row.P95, row.Max} {
			rec = append(rec, rawScaler(v))
		}
		rec = append(rec, itoa(row.Outliers), rawScaler(row.FailureRatio))
		if row.Delta != nil {
			rec = append(rec, rawScaler(row.Delta.Delta), rawScaler(row.Delta.P))
		} else {
			rec = append(rec, "", "")
		}
		cw.Write(rec)
	}
	cw.Flush()
	return cw.Error()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
