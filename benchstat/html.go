// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"fmt"
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("").Parse(`
<table class='benchstat'>
<tr><th>kind<th>variant<th>name<th>n<th>min<th>mean<th>median<th>p95<th>max<th>outliers<th>failed<th>vs Small
{{- range .}}
<tr class='{{.Class}}'><td>{{.Kind}}<td>{{.Variant}}<td>{{.Name}}<td>{{.N}}{{range .Values}}<td>{{.}}{{end}}<td>{{.Outliers}}<td>{{.Failed}}<td class='delta'>{{.Delta}}
{{- end}}
</table>
`))

type htmlRow struct {
	Kind, Variant, Name string
	N, Outliers         int
	Values              []string
	Failed, Delta       string
	Class               string
}

// FormatHTML writes an HTML table of t to w. Large rows that differ
// significantly from their Small counterpart have class "better" or
// "worse"; smaller values are better.
func FormatHTML(w io.Writer, t *Table) error {
	rows := make([]htmlRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		hr := htmlRow{
			Kind:     row.Kind.String(),
			Variant:  row.Variant.String(),
			Name:     row.Name,
			N:        row.N,
			Outliers: row.Outliers,
			Delta:    deltaString(t, row),
			Class:    "unchanged",
		}
		for _, v := range []float64{row.Min, row.Mean, row.Median, row.P95, row.Max} {
			hr.Values = append(hr.Values, row.Scaler(v))
		}
		if row.Latency != nil {
			hr.Failed = percent(row.FailureRatio)
		}
		switch row.Change(t.Alpha) {
		case -1:
			hr.Class = "better"
		case 1:
			hr.Class = "worse"
		}
		rows = append(rows, hr)
	}
	if err := htmlTemplate.Execute(w, rows); err != nil {
		return fmt.Errorf("formatting HTML: %w", err)
	}
	return nil
}
