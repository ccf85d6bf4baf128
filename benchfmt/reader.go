// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads the CSV files written by the benchmark
// driver.
//
// A memory file holds "timestamp,kb" rows. A request file holds
// "start_timestamp,response_code,duration" rows. Either may begin with
// a header line, which is recognized by its first field not being a
// number.
package benchfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/benchviz/resultanalyzer/benchseries"
)

// ErrMissingField is wrapped by errors for rows with fewer fields
// than their kind requires and for file names missing a component.
var ErrMissingField = errors.New("missing field")

// A Reader reads observations of a single kind from a CSV file.
//
// Its API is modeled on bufio.Scanner. To construct a new Reader,
// either call NewReader, or call Reset on a zeroed Reader.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	kind     benchseries.Kind
	line     int
	started  bool
	err      error

	mem benchseries.MemoryObservation
	req benchseries.RequestObservation
}

// A SyntaxError represents a malformed row on a particular line of a
// results file. Err is ErrMissingField for short rows or the strconv
// error for unparsable numbers.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
	Err      error
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// NewReader constructs a reader of kind observations from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string, kind benchseries.Kind) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName, kind)
	return reader
}

// Reset resets the reader to begin reading kind observations from a
// new input.
func (r *Reader) Reset(ior io.Reader, fileName string, kind benchseries.Kind) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.kind = kind
	r.line = 0
	r.started = false
	r.err = nil
}

func (r *Reader) newSyntaxError(err error, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, fmt.Sprintf(format, args...), err}
}

// Scan advances the reader to the next observation and reports
// whether one was read. The caller should use the Memory or Request
// method to get it, according to the reader's kind.
//
// If Scan reaches EOF, finds a malformed row or an I/O error occurs,
// it returns false, in which case the caller should use the Err
// method to check for errors. A malformed row stops the reader: a
// results file is either read completely or rejected.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		line := strings.TrimSpace(r.s.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if !r.started {
			r.started = true
			if isHeader(fields) {
				continue
			}
		}
		if err := r.parse(fields); err != nil {
			r.err = err
			return false
		}
		return true
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// isHeader reports whether fields is a header line: no field is a
// number. A first line with any numeric field is data, so a malformed
// first row is an error rather than a skipped header.
func isHeader(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err == nil {
			return false
		}
	}
	return true
}

func (r *Reader) parse(fields []string) error {
	switch r.kind {
	case benchseries.Memory:
		if len(fields) < 2 {
			return r.newSyntaxError(ErrMissingField, "want timestamp,kb; got %d fields", len(fields))
		}
		ts, err := r.parseFloat("timestamp", fields[0])
		if err != nil {
			return err
		}
		kb, err := r.parseFloat("kb", fields[1])
		if err != nil {
			return err
		}
		r.mem = benchseries.MemoryObservation{Timestamp: ts, Kilobytes: kb}
	case benchseries.Request:
		if len(fields) < 3 {
			return r.newSyntaxError(ErrMissingField, "want start_timestamp,response_code,duration; got %d fields", len(fields))
		}
		start, err := r.parseFloat("start_timestamp", fields[0])
		if err != nil {
			return err
		}
		code, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return r.newSyntaxError(err, "bad response_code %q", fields[1])
		}
		d, err := r.parseFloat("duration", fields[2])
		if err != nil {
			return err
		}
		r.req = benchseries.RequestObservation{StartTime: start, Duration: d, StatusCode: uint32(code)}
	default:
		return fmt.Errorf("%s: %w %s", r.fileName, benchseries.ErrUnknownKind, r.kind)
	}
	return nil
}

func (r *Reader) parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, r.newSyntaxError(err, "bad %s %q", field, s)
	}
	return v, nil
}

// Memory returns the memory observation that was just read by Scan.
func (r *Reader) Memory() benchseries.MemoryObservation {
	return r.mem
}

// Request returns the request observation that was just read by
// Scan.
func (r *Reader) Request() benchseries.RequestObservation {
	return r.req
}

// Err returns the first error encountered by the Reader, or nil if
// the input was read completely.
func (r *Reader) Err() error {
	return r.err
}

// ReadSeries reads every observation from r into a series described
// by h. fileName is used in error messages.
//
// ReadSeries never returns a partial series: on error the series is
// nil.
func ReadSeries(r io.Reader, fileName string, h benchseries.Header) (*benchseries.Series, error) {
	rd := NewReader(r, fileName, h.Kind)
	var mem []benchseries.MemoryObservation
	var req []benchseries.RequestObservation
	for rd.Scan() {
		switch h.Kind {
		case benchseries.Memory:
			mem = append(mem, rd.Memory())
		case benchseries.Request:
			req = append(req, rd.Request())
		}
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	return benchseries.New(h, mem, req)
}
