// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package local

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestNewWriter(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	fs := NewFS(root)

	w, err := fs.NewWriter(ctx, "charts/memory/api.svg", map[string]string{"kind": "memory"})
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(w, "<svg>")
	path := filepath.Join(root, "charts", "memory", "api.svg")
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("file visible before Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<svg>" {
		t.Errorf("content = %q", data)
	}

	w, err = fs.NewWriter(ctx, "charts/memory/broken.svg", nil)
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(w, "<sv")
	if err := w.CloseWithError(errors.New("render failed")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(filepath.Join(root, "charts", "memory"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "api.svg" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory holds %v, want only api.svg", names)
	}
}
