// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testFiles(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for _, f := range []struct{ name, data string }{
		{"memory_bench_Small_api.csv", "timestamp,kb\n0,100\n1,200\n2,150\n"},
		{"request_bench_Small_api.csv", "start_timestamp,response_code,duration\n0.5,200,0.1\n1.5,500,0.3\n"},
	} {
		p := filepath.Join(dir, f.name)
		if err := os.WriteFile(p, []byte(f.data), 0o666); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	return paths
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRender(t *testing.T) {
	out := t.TempDir()
	_, stderr, err := run(t, append([]string{"render", "-o", out}, testFiles(t)...)...)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"memory.svg", "request.svg", "api_small.svg"} {
		data, err := os.ReadFile(filepath.Join(out, name))
		if err != nil {
			t.Errorf("missing chart: %v", err)
			continue
		}
		if !bytes.Contains(data, []byte("<svg")) {
			t.Errorf("%s is not SVG", name)
		}
		if !strings.Contains(stderr, name) {
			t.Errorf("status output %q does not mention %s", stderr, name)
		}
	}
}

func TestRenderConfig(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "chart.yaml")
	if err := os.WriteFile(conf, []byte("format: png\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	args := append([]string{"render", "--config", conf, "--kind", "memory", "-o", dir}, testFiles(t)...)
	if _, _, err := run(t, args...); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "memory.png")); err != nil {
		t.Error(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "request.png")); err == nil {
		t.Error("request chart written despite -kind memory")
	}
}

func TestRenderErrors(t *testing.T) {
	files := testFiles(t)
	for _, args := range [][]string{
		{"render", "-o", "gs://"},
		{"render", "--format", "gif"},
		{"render", "--kind", "disk"},
		{"render", "-o", t.TempDir(), filepath.Join(t.TempDir(), "memory_bench_Small_gone.csv")},
	} {
		if _, _, err := run(t, append(args, files...)...); err == nil {
			t.Errorf("%q: want error", args)
		}
	}
}

func TestStat(t *testing.T) {
	stdout, _, err := run(t, append([]string{"stat", "--format", "csv"}, testFiles(t)...)...)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header and 2 rows:\n%s", len(lines), stdout)
	}
	if !strings.HasPrefix(lines[0], "kind,variant,name,unit,n,") {
		t.Errorf("bad header %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "request,Small,api,s,2,") {
		t.Errorf("bad request row %q", lines[2])
	}

	if _, _, err := run(t, append([]string{"stat", "--sort", "speed"}, testFiles(t)...)...); err == nil {
		t.Error("want error for unknown sort order")
	}
}

func TestSaveList(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "series.db")
	_, stderr, err := run(t, append([]string{"save", "--dsn", dsn}, testFiles(t)...)...)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(stderr, "saved ") != 2 {
		t.Errorf("save output:\n%s", stderr)
	}

	stdout, _, err := run(t, "list", "--dsn", dsn, "--variant", "small", "--kind", "request")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header, rule and 1 row:\n%s", len(lines), stdout)
	}
	if f := strings.Fields(lines[2]); len(f) < 5 || f[1] != "request" || f[2] != "Small" || f[3] != "api" || f[4] != "2" {
		t.Errorf("bad row %q", lines[2])
	}
}

func TestExport(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "series.db")
	if _, _, err := run(t, append([]string{"save", "--dsn", dsn}, testFiles(t)...)...); err != nil {
		t.Fatal(err)
	}
	out := t.TempDir()
	if _, _, err := run(t, "export", "--dsn", dsn, "-o", out, "1"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(out, "memory_Small_api.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "timestamp,kb\n0,100\n1,200\n2,150\n"; string(data) != want {
		t.Errorf("exported %q, want %q", data, want)
	}

	if _, _, err := run(t, "export", "--dsn", dsn, "-o", out, "99"); err == nil {
		t.Error("want error for unknown series")
	}
}
