// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/plot/plotter"
)

var (
	// ErrUnknownKind is returned for a series kind other than
	// "memory" or "request".
	ErrUnknownKind = errors.New("unknown series kind")

	// ErrUnknownVariant is returned for a benchmark variant other
	// than "Small" or "Large".
	ErrUnknownVariant = errors.New("unknown benchmark variant")
)

// A Kind identifies which observations a Series holds.
type Kind int

const (
	// Memory series hold MemoryObservations.
	Memory Kind = iota
	// Request series hold RequestObservations.
	Request
)

// ParseKind parses the kind component of a result file name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "memory":
		return Memory, nil
	case "request":
		return Request, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, s)
}

func (k Kind) String() string {
	switch k {
	case Memory:
		return "memory"
	case Request:
		return "request"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Unit returns the unit of the values a series of kind k plots.
func (k Kind) Unit() string {
	if k == Request {
		return "s"
	}
	return "kb"
}

// A Variant is the deployment size a benchmark ran against.
type Variant int

const (
	Small Variant = iota
	Large
)

// ParseVariant parses a variant label. The match is case-insensitive,
// so "Small", "small" and "SMALL" are all Small.
func ParseVariant(s string) (Variant, error) {
	switch {
	case strings.EqualFold(s, "Small"):
		return Small, nil
	case strings.EqualFold(s, "Large"):
		return Large, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownVariant, s)
}

func (v Variant) String() string {
	switch v {
	case Small:
		return "Small"
	case Large:
		return "Large"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// A Header identifies a series: what it holds, which variant it was
// measured against and which service it measured.
type Header struct {
	Kind    Kind
	Variant Variant
	Name    string
}

// ParseHeader builds a Header from the already-split kind, variant
// and name strings of a result file name.
func ParseHeader(kind, variant, name string) (Header, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Header{}, err
	}
	v, err := ParseVariant(variant)
	if err != nil {
		return Header{}, err
	}
	return Header{Kind: k, Variant: v, Name: name}, nil
}

func (h Header) String() string {
	return fmt.Sprintf("%s/%s/%s", h.Kind, h.Variant, h.Name)
}

// A Series is the ordered observations of one benchmark run.
//
// A Series owns its observations. They are sorted by time when the
// Series is constructed and never modified afterwards; callers must
// not modify the slices returned by Memory and Requests.
type Series struct {
	Header

	memory   []MemoryObservation
	requests []RequestObservation
}

// NewMemory returns a memory series holding a sorted copy of obs.
func NewMemory(name string, v Variant, obs []MemoryObservation) *Series {
	s := &Series{Header: Header{Kind: Memory, Variant: v, Name: name}}
	s.memory = append([]MemoryObservation(nil), obs...)
	sort.SliceStable(s.memory, func(i, j int) bool {
		return s.memory[i].Timestamp < s.memory[j].Timestamp
	})
	return s
}

// NewRequest returns a request series holding a copy of obs sorted
// by start time.
func NewRequest(name string, v Variant, obs []RequestObservation) *Series {
	s := &Series{Header: Header{Kind: Request, Variant: v, Name: name}}
	s.requests = append([]RequestObservation(nil), obs...)
	sort.SliceStable(s.requests, func(i, j int) bool {
		return s.requests[i].StartTime < s.requests[j].StartTime
	})
	return s
}

// New returns a series described by h holding the observations that
// match h.Kind. Observations of the other kind are an error, since a
// series never mixes them.
func New(h Header, memory []MemoryObservation, requests []RequestObservation) (*Series, error) {
	switch h.Kind {
	case Memory:
		if len(requests) > 0 {
			return nil, fmt.Errorf("series %s: memory series given %d request observations", h, len(requests))
		}
		return NewMemory(h.Name, h.Variant, memory), nil
	case Request:
		if len(memory) > 0 {
			return nil, fmt.Errorf("series %s: request series given %d memory observations", h, len(memory))
		}
		return NewRequest(h.Name, h.Variant, requests), nil
	}
	return nil, fmt.Errorf("%w %s", ErrUnknownKind, h.Kind)
}

// Len returns the number of observations in s.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	if s.Kind == Request {
		return len(s.requests)
	}
	return len(s.memory)
}

// Memory returns the observations of a memory series, or nil for a
// request series.
func (s *Series) Memory() []MemoryObservation {
	return s.memory
}

// Requests returns the observations of a request series, or nil for
// a memory series.
func (s *Series) Requests() []RequestObservation {
	return s.requests
}

// TimeRange implements Ranger. For a memory series it spans the
// sample timestamps. For a request series it spans from the first
// start time to the latest response, so a long-running request
// extends the range past its own start.
func (s *Series) TimeRange() Range {
	if s == nil {
		return Range{}
	}
	switch s.Kind {
	case Memory:
		if len(s.memory) == 0 {
			return Range{}
		}
		r := Range{s.memory[0].Timestamp, s.memory[0].Timestamp}
		for _, o := range s.memory[1:] {
			r.Min = math.Min(r.Min, o.Timestamp)
			r.Max = math.Max(r.Max, o.Timestamp)
		}
		return r
	case Request:
		if len(s.requests) == 0 {
			return Range{}
		}
		r := Range{s.requests[0].StartTime, s.requests[0].End()}
		for _, o := range s.requests[1:] {
			r.Min = math.Min(r.Min, o.StartTime)
			r.Max = math.Max(r.Max, o.End())
		}
		return r
	}
	return Range{}
}

// Value returns the plotted quantity of observation i: kilobytes for
// a memory series, duration for a request series.
func (s *Series) Value(i int) float64 {
	if s.Kind == Request {
		return s.requests[i].Duration
	}
	return s.memory[i].Kilobytes
}

// Values returns the plotted quantity of every observation, in time
// order.
func (s *Series) Values() []float64 {
	vs := make([]float64, s.Len())
	for i := range vs {
		vs[i] = s.Value(i)
	}
	return vs
}

// ValueRange returns the range of the plotted quantity of s, or the
// zero Range if s is empty.
func (s *Series) ValueRange() Range {
	if s.Len() == 0 {
		return Range{}
	}
	r := Range{s.Value(0), s.Value(0)}
	for i := 1; i < s.Len(); i++ {
		v := s.Value(i)
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}
	return r
}

// Points returns (time, value) pairs for every observation of s. A
// request is placed at its start time.
func (s *Series) Points() plotter.XYs {
	pts := make(plotter.XYs, s.Len())
	for i := range pts {
		if s.Kind == Request {
			pts[i].X = s.requests[i].StartTime
		} else {
			pts[i].X = s.memory[i].Timestamp
		}
		pts[i].Y = s.Value(i)
	}
	return pts
}

// Filter returns a new series of the same kind holding the
// observations of s for which keep returns true. keep is called with
// the observation index, so it may use Value or the raw observations.
func (s *Series) Filter(keep func(i int) bool) *Series {
	out := &Series{Header: s.Header}
	for i := 0; i < s.Len(); i++ {
		if !keep(i) {
			continue
		}
		if s.Kind == Request {
			out.requests = append(out.requests, s.requests[i])
		} else {
			out.memory = append(out.memory, s.memory[i])
		}
	}
	return out
}

// ValueRange returns the range covering the plotted quantity of every
// non-empty series in ss.
func ValueRange(ss ...*Series) Range {
	var out Range
	seen := false
	for _, s := range ss {
		if s == nil || s.Len() == 0 {
			continue
		}
		r := s.ValueRange()
		if !seen {
			out, seen = r, true
			continue
		}
		out = out.Union(r)
	}
	return out
}

// ByKind returns a predicate selecting series of kind k.
func ByKind(k Kind) func(*Series) bool {
	return func(s *Series) bool { return s.Kind == k }
}

// ByVariant returns a predicate selecting series of variant v.
func ByVariant(v Variant) func(*Series) bool {
	return func(s *Series) bool { return s.Variant == v }
}

// ByName returns a predicate selecting series measuring the named
// service.
func ByName(name string) func(*Series) bool {
	return func(s *Series) bool { return s.Name == name }
}

// Select returns the series in ss for which every predicate holds.
func Select(ss []*Series, preds ...func(*Series) bool) []*Series {
	var out []*Series
outer:
	for _, s := range ss {
		for _, p := range preds {
			if !p(s) {
				continue outer
			}
		}
		out = append(out, s)
	}
	return out
}

// Sets converts ss into a Set for range aggregation.
func Sets(ss []*Series) Set {
	set := make(Set, len(ss))
	for i, s := range ss {
		set[i] = s
	}
	return set
}
