// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot/plotter"
)

func TestParseVariant(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Variant
		err  bool
	}{
		{"Small", Small, false},
		{"small", Small, false},
		{"LARGE", Large, false},
		{"Large", Large, false},
		{"Medium", 0, true},
		{"", 0, true},
	} {
		got, err := ParseVariant(test.in)
		if test.err {
			if !errors.Is(err, ErrUnknownVariant) {
				t.Errorf("ParseVariant(%q): want ErrUnknownVariant, got %v", test.in, err)
			}
			continue
		}
		if err != nil || got != test.want {
			t.Errorf("ParseVariant(%q) = %v, %v; want %v", test.in, got, err, test.want)
		}
	}
}

func TestParseHeader(t *testing.T) {
	h, err := ParseHeader("request", "Large", "backend")
	if err != nil {
		t.Fatal(err)
	}
	want := Header{Kind: Request, Variant: Large, Name: "backend"}
	if h != want {
		t.Errorf("got %+v, want %+v", h, want)
	}
	if h.String() != "request/Large/backend" {
		t.Errorf("String() = %q", h.String())
	}

	if _, err := ParseHeader("disk", "Small", "x"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("unknown kind: got %v", err)
	}
	if _, err := ParseHeader("memory", "Tiny", "x"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("unknown variant: got %v", err)
	}
}

func TestNewSortsByTime(t *testing.T) {
	in := []MemoryObservation{{3, 30}, {1, 10}, {2, 20}, {1, 11}}
	s := NewMemory("svc", Small, in)

	want := []MemoryObservation{{1, 10}, {1, 11}, {2, 20}, {3, 30}}
	if diff := cmp.Diff(want, s.Memory()); diff != "" {
		t.Errorf("observations (-want +got):\n%s", diff)
	}
	// The input is copied, not sorted in place.
	if in[0].Timestamp != 3 {
		t.Errorf("NewMemory modified its input: %v", in)
	}

	r := NewRequest("svc", Large, []RequestObservation{{5, 1, 200}, {0, 2, 500}})
	if got := r.Requests()[0].StartTime; got != 0 {
		t.Errorf("first request starts at %v, want 0", got)
	}
}

func TestNewRejectsMixedKinds(t *testing.T) {
	h := Header{Kind: Memory, Variant: Small, Name: "svc"}
	if _, err := New(h, nil, []RequestObservation{{0, 1, 200}}); err == nil {
		t.Error("want error for request observations in a memory series")
	}
	s, err := New(h, []MemoryObservation{{0, 1}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 || s.Kind != Memory {
		t.Errorf("got %v with %d observations", s.Header, s.Len())
	}
}

func TestSeriesTimeRange(t *testing.T) {
	check := func(name string, s *Series, want Range) {
		t.Helper()
		if got := s.TimeRange(); got != want {
			t.Errorf("%s: TimeRange() = %v, want %v", name, got, want)
		}
	}
	check("memory", NewMemory("a", Small, []MemoryObservation{{4, 1}, {2, 9}, {7, 3}}), Range{2, 7})
	// The latest response, not the latest start, bounds the range.
	check("request", NewRequest("a", Small, []RequestObservation{{0, 10, 200}, {5, 1, 200}}), Range{0, 10})
	check("empty", NewMemory("a", Small, nil), Range{})
	check("single", NewMemory("a", Small, []MemoryObservation{{3, 1}}), Range{3, 3})
}

func TestValueRangeAndPoints(t *testing.T) {
	s := NewRequest("a", Small, []RequestObservation{{1, 0.5, 200}, {0, 0.25, 200}, {2, 2, 404}})
	if got, want := s.ValueRange(), (Range{0.25, 2}); got != want {
		t.Errorf("ValueRange() = %v, want %v", got, want)
	}
	want := plotter.XYs{{X: 0, Y: 0.25}, {X: 1, Y: 0.5}, {X: 2, Y: 2}}
	if diff := cmp.Diff(want, s.Points()); diff != "" {
		t.Errorf("Points() (-want +got):\n%s", diff)
	}

	m := NewMemory("b", Small, []MemoryObservation{{0, 100}})
	if got, want := ValueRange(s, nil, NewMemory("c", Small, nil), m), (Range{0.25, 100}); got != want {
		t.Errorf("ValueRange(...) = %v, want %v", got, want)
	}
}

func TestFilter(t *testing.T) {
	s := NewRequest("a", Small, []RequestObservation{{0, 1, 200}, {1, 2, 500}, {2, 3, 200}})
	ok := s.Filter(func(i int) bool { return !s.Requests()[i].Failed() })
	if ok.Len() != 2 || ok.Header != s.Header {
		t.Fatalf("Filter kept %d observations with header %v", ok.Len(), ok.Header)
	}
	if diff := cmp.Diff([]float64{1, 3}, ok.Values()); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
}

func TestSelect(t *testing.T) {
	ss := []*Series{
		NewMemory("frontend", Small, nil),
		NewMemory("backend", Large, nil),
		NewRequest("backend", Small, nil),
		NewRequest("backend", Large, nil),
	}
	names := func(ss []*Series) []string {
		var out []string
		for _, s := range ss {
			out = append(out, s.Header.String())
		}
		return out
	}

	got := names(Select(ss, ByKind(Request), ByName("backend")))
	want := []string{"request/Small/backend", "request/Large/backend"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	got = names(Select(ss, ByVariant(Large)))
	want = []string{"memory/Large/backend", "request/Large/backend"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
