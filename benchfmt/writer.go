// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/benchviz/resultanalyzer/benchseries"
)

// A Writer writes series in the results format read by Reader.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a writer that writes results to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes a header line followed by one row per observation of
// s. Values are written with the fewest digits that read back
// exactly.
func (w *Writer) Write(s *benchseries.Series) error {
	switch s.Kind {
	case benchseries.Memory:
		w.buf.WriteString("timestamp,kb\n")
		for _, o := range s.Memory() {
			w.row(formatFloat(o.Timestamp), formatFloat(o.Kilobytes))
		}
	case benchseries.Request:
		w.buf.WriteString("start_timestamp,response_code,duration\n")
		for _, o := range s.Requests() {
			w.row(formatFloat(o.StartTime), strconv.FormatUint(uint64(o.StatusCode), 10), formatFloat(o.Duration))
		}
	default:
		return fmt.Errorf("%w %s", benchseries.ErrUnknownKind, s.Kind)
	}

	// Write to the buffer can't fail, so we only have to check if
	// this fails.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

func (w *Writer) row(fields ...string) {
	w.buf.WriteString(strings.Join(fields, ","))
	w.buf.WriteByte('\n')
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FileName returns the results file name that ParseFileName maps back
// to h, for example "memory_Small_backend.csv".
func FileName(h benchseries.Header) (string, error) {
	if h.Name == "" || strings.ContainsAny(h.Name, "_/\\") {
		return "", fmt.Errorf("series name %q cannot be used in a file name", h.Name)
	}
	return fmt.Sprintf("%s_%s_%s.csv", h.Kind, h.Variant, h.Name), nil
}
