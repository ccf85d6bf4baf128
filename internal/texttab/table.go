// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out plain-text tables with aligned columns.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Its building methods return the Table so callers can chain them to
// add many cells at once.
type Table struct {
	rows [][]cell
	// rules holds the indexes of rows drawn as horizontal rules.
	rules map[int]bool
}

type cell struct {
	value     string
	alignment align
}

// A CellOption modifies a cell as it is added.
type CellOption func(c *cell)

var (
	Left   CellOption = func(c *cell) { c.alignment = alignLeft }
	Center CellOption = func(c *cell) { c.alignment = alignCenter }
	Right  CellOption = func(c *cell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// pad pads s to width w. Left-aligned cells are not padded on the
// right; Format does that only if another cell follows.
func (a align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	switch a {
	case alignCenter:
		return strings.Repeat(" ", n/2) + s
	case alignRight:
		return strings.Repeat(" ", n) + s
	}
	return s
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Rule adds a row that is drawn as a horizontal line across the table.
func (t *Table) Rule() *Table {
	if t.rules == nil {
		t.rules = make(map[int]bool)
	}
	t.rules[len(t.rows)] = true
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell to the end of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := cell{value: value}
	for _, o := range opts {
		o(&c)
	}
	last := len(t.rows) - 1
	t.rows[last] = append(t.rows[last], c)
	return t
}

// Cells adds a left-aligned cell for each value.
func (t *Table) Cells(values ...string) *Table {
	for _, v := range values {
		t.Cell(v)
	}
	return t
}

// Format lays out table t and writes it to w. Columns are separated
// by two spaces and lines carry no trailing spaces.
func (t *Table) Format(w io.Writer) error {
	var ws []int
	for _, row := range t.rows {
		for i, c := range row {
			if i == len(ws) {
				ws = append(ws, 0)
			}
			ws[i] = max(ws[i], utf8.RuneCountInString(c.value))
		}
	}
	total := 0
	for i, cw := range ws {
		if i > 0 {
			total += 2
		}
		total += cw
	}

	var buf strings.Builder
	for ri, row := range t.rows {
		if t.rules[ri] {
			buf.WriteString(strings.Repeat("─", total))
			buf.WriteByte('\n')
			continue
		}
		line := make([]string, len(row))
		for i, c := range row {
			s := c.alignment.pad(c.value, ws[i])
			if i < len(row)-1 {
				s += strings.Repeat(" ", ws[i]-utf8.RuneCountInString(s))
			}
			line[i] = s
		}
		buf.WriteString(strings.TrimRight(strings.Join(line, "  "), " "))
		buf.WriteByte('\n')
	}
	_, err := io.WriteString(w, buf.String())
	if err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
