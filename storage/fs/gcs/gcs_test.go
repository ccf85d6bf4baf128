// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcs

import (
	"context"
	"testing"
)

func TestContentType(t *testing.T) {
	for _, test := range []struct {
		name, want string
	}{
		{"charts/api.svg", "image/svg+xml"},
		{"charts/api.png", "image/png"},
		{"report/summary.bin", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	} {
		if got := contentType(test.name); got != test.want {
			t.Errorf("contentType(%q) = %q, want %q", test.name, got, test.want)
		}
	}
}

func TestClientOptions(t *testing.T) {
	for _, test := range []struct {
		auth Auth
		n    int
	}{
		{Auth{}, 0},
		{Auth{Anonymous: true}, 1},
		{Auth{CredentialsFile: "key.json"}, 1},
		{Auth{AccessToken: "tok"}, 1},
	} {
		if got := len(test.auth.ClientOptions()); got != test.n {
			t.Errorf("%+v: got %d options, want %d", test.auth, got, test.n)
		}
	}
}

func TestNewFSAnonymous(t *testing.T) {
	// Constructing a client does not contact the service.
	fs, err := NewFS(context.Background(), "benchviz-charts", Auth{Anonymous: true})
	if err != nil {
		t.Fatal(err)
	}
	if fs == nil {
		t.Fatal("nil FS")
	}
}
