// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/benchviz/resultanalyzer/benchseries"
	. "github.com/benchviz/resultanalyzer/storage/db"
	"github.com/benchviz/resultanalyzer/storage/db/dbtest"
)

var (
	memSeries = benchseries.NewMemory("api", benchseries.Small, []benchseries.MemoryObservation{
		{Timestamp: 0, Kilobytes: 1024},
		{Timestamp: 1.5, Kilobytes: 2048},
		{Timestamp: 3, Kilobytes: 1536},
	})
	reqSeries = benchseries.NewRequest("api", benchseries.Large, []benchseries.RequestObservation{
		{StartTime: 0.25, Duration: 0.125, StatusCode: 200},
		{StartTime: 0.5, Duration: 2, StatusCode: 503},
	})
)

var seriesCmp = cmp.Options{
	cmp.AllowUnexported(benchseries.Series{}),
	cmpopts.EquateEmpty(),
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewDB(t)

	for _, s := range []*benchseries.Series{memSeries, reqSeries} {
		id, err := db.InsertSeries(ctx, s, "results/"+s.Name+".csv")
		if err != nil {
			t.Fatalf("InsertSeries(%s): %v", s.Header, err)
		}
		got, err := db.LoadSeries(ctx, id)
		if err != nil {
			t.Fatalf("LoadSeries(%d): %v", id, err)
		}
		if diff := cmp.Diff(s, got, seriesCmp); diff != "" {
			t.Errorf("%s (-want +got):\n%s", s.Header, diff)
		}
	}

	if _, err := db.LoadSeries(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadSeries(999): got %v, want ErrNotFound", err)
	}
}

func TestEmptySeries(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewDB(t)

	empty := benchseries.NewRequest("idle", benchseries.Small, nil)
	id, err := db.InsertSeries(ctx, empty, "idle.csv")
	if err != nil {
		t.Fatal(err)
	}
	got, err := db.LoadSeries(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Header != empty.Header || got.Len() != 0 {
		t.Errorf("got %s with %d observations", got.Header, got.Len())
	}
}

func TestListAndDelete(t *testing.T) {
	SetNow(time.Unix(86400, 0))
	defer SetNow(time.Time{})

	ctx := context.Background()
	db := dbtest.NewDB(t)

	other := benchseries.NewMemory("web", benchseries.Large, []benchseries.MemoryObservation{{Timestamp: 0, Kilobytes: 1}})
	var ids []int64
	for _, s := range []*benchseries.Series{memSeries, reqSeries, other} {
		id, err := db.InsertSeries(ctx, s, s.Name+".csv")
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	entries, err := db.ListSeries(ctx, Query{})
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{
		{ID: ids[0], Header: memSeries.Header, Source: "api.csv", Created: time.Unix(86400, 0), Len: 3},
		{ID: ids[1], Header: reqSeries.Header, Source: "api.csv", Created: time.Unix(86400, 0), Len: 2},
		{ID: ids[2], Header: other.Header, Source: "web.csv", Created: time.Unix(86400, 0), Len: 1},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("ListSeries (-want +got):\n%s", diff)
	}

	check := func(q Query, want ...int64) {
		t.Helper()
		entries, err := db.ListSeries(ctx, q)
		if err != nil {
			t.Fatal(err)
		}
		var got []int64
		for _, e := range entries {
			got = append(got, e.ID)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ListSeries(%+v) (-want +got):\n%s", q, diff)
		}
	}
	check(Query{Name: "api"}, ids[0], ids[1])
	check(Query{Kind: "memory"}, ids[0], ids[2])
	check(Query{Kind: "memory", Variant: "Large"}, ids[2])
	check(Query{Name: "nothing"})

	if err := db.DeleteSeries(ctx, ids[0]); err != nil {
		t.Fatal(err)
	}
	check(Query{}, ids[1], ids[2])
	if _, err := db.LoadSeries(ctx, ids[0]); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadSeries after delete: %v", err)
	}
	if err := db.DeleteSeries(ctx, ids[0]); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteSeries: %v", err)
	}
	var orphans int
	if err := DBSQL(db).QueryRow("SELECT COUNT(*) FROM MemoryObservations WHERE SeriesID = ?", ids[0]).Scan(&orphans); err != nil {
		t.Fatal(err)
	}
	if orphans != 0 {
		t.Errorf("%d observations left after delete", orphans)
	}
	if n, err := db.CountSeries(ctx); err != nil || n != 2 {
		t.Errorf("CountSeries = %d, %v", n, err)
	}
}
