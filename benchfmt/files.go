// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/benchviz/resultanalyzer/benchseries"
)

// ParseFileName derives a series header from the name of a results
// file, which has the form
//
//	<kind>_..._<variant>_<name>.csv
//
// for example "memory_bench_Small_backend.csv". Only the base name of
// path is considered. Components between the kind and the variant
// are ignored.
func ParseFileName(path string) (benchseries.Header, error) {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".csv") {
		return benchseries.Header{}, fmt.Errorf("%s: not a .csv file", path)
	}
	parts := strings.Split(strings.TrimSuffix(base, ".csv"), "_")
	if len(parts) < 3 {
		return benchseries.Header{}, fmt.Errorf("%s: want <kind>_<variant>_<name>.csv: %w", path, ErrMissingField)
	}
	name := parts[len(parts)-1]
	if name == "" {
		return benchseries.Header{}, fmt.Errorf("%s: empty series name: %w", path, ErrMissingField)
	}
	h, err := benchseries.ParseHeader(parts[0], parts[len(parts)-2], name)
	if err != nil {
		return benchseries.Header{}, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

// A Files reads series from a sequence of results files.
//
// Each file's kind, variant and name come from its file name (see
// ParseFileName). If AllowLabels is true, then entries in Paths may
// be of the form label=path, and the label replaces the series name.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowLabels indicates that custom labels are allowed in
	// Paths.
	//
	// This is generally the desired behavior when the file list
	// comes from command-line flags, as it allows users to
	// override the series name.
	AllowLabels bool

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet. Note that this distinguishes nil
	// from length 0.
	inputs []input

	series *benchseries.Series
	path   string
	err    error
}

type input struct {
	path  string
	label string
}

// init does first-use initialization of f.
func (f *Files) init() {
	f.inputs = []input{}
	for _, path := range f.Paths {
		label := ""
		if i := strings.Index(path, "="); f.AllowLabels && i >= 0 {
			label, path = path[:i], path[i+1:]
		}
		f.inputs = append(f.inputs, input{path, label})
	}
}

// Scan reads the next file in the sequence and reports whether a
// series was read. The caller should use the Series method to get
// it. If Scan reaches the end of the file sequence, or if any file
// cannot be opened, named or parsed, it returns false. In this case,
// the caller should use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		f.init()
	}
	if len(f.inputs) == 0 {
		f.series = nil
		return false
	}
	inp := f.inputs[0]
	f.inputs = f.inputs[1:]

	s, err := readFile(inp.path)
	if err != nil {
		f.err, f.series = err, nil
		return false
	}
	if inp.label != "" {
		s.Name = inp.label
	}
	f.series, f.path = s, inp.path
	return true
}

func readFile(path string) (*benchseries.Series, error) {
	h, err := ParseFileName(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadSeries(file, path, h)
}

// Series returns the series that was just read by Scan.
func (f *Files) Series() *benchseries.Series {
	return f.series
}

// Path returns the path of the file the current series was read
// from.
func (f *Files) Path() string {
	return f.path
}

// Err returns the error that stopped Scan, if any.
// If Scan stopped because it read each file to completion,
// or if Scan has not yet returned false, Err returns nil.
func (f *Files) Err() error {
	return f.err
}
