// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fs

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMemFS(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()

	meta := map[string]string{"kind": "memory"}
	w, err := fs.NewWriter(ctx, "charts/api.svg", meta)
	if err != nil {
		t.Fatal(err)
	}
	meta["kind"] = "changed"
	io.WriteString(w, "<svg>")
	if len(fs.Files()) != 0 {
		t.Error("file visible before Close")
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("x")); !errors.Is(err, ErrClosed) {
		t.Errorf("write after close: %v", err)
	}

	aborted, _ := fs.NewWriter(ctx, "charts/broken.svg", nil)
	io.WriteString(aborted, "<sv")
	aborted.CloseWithError(errors.New("render failed"))

	if diff := cmp.Diff([]string{"charts/api.svg"}, fs.Files()); diff != "" {
		t.Errorf("Files (-want +got):\n%s", diff)
	}
	data, gotMeta, ok := fs.File("charts/api.svg")
	if !ok || string(data) != "<svg>" {
		t.Errorf("File = %q, %v", data, ok)
	}
	if diff := cmp.Diff(map[string]string{"kind": "memory"}, gotMeta); diff != "" {
		t.Errorf("metadata (-want +got):\n%s", diff)
	}
}
