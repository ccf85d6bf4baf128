// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// xlsxSheet is the name of the summary worksheet.
const xlsxSheet = "Summary"

// WriteXLSX writes t to w as an Excel workbook with one worksheet.
// Numeric cells hold exact values in each row's unit.
func WriteXLSX(w io.Writer, t *Table) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return err
	}

	header := make([]interface{}, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(csvHeader), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(xlsxSheet, "A1", last, bold); err != nil {
		return err
	}

	for i, row := range t.Rows {
		rec := []interface{}{
			row.Kind.String(), row.Variant.String(), row.Name, row.Unit, row.N,
			row.Min, row.Mean, row.Median, row.P95, row.Max,
			row.Outliers, row.FailureRatio,
		}
		if row.Delta != nil {
			rec = append(rec, row.Delta.Delta, row.Delta.P)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &rec); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	if err := f.SetPanes(xlsxSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return err
	}
	return f.Write(w)
}
