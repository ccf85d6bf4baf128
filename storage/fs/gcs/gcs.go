// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcs implements the fs.FS interface using Google Cloud Storage.
package gcs

import (
	"mime"
	"path"

	"cloud.google.com/go/storage"
	"golang.org/x/net/context"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"

	"github.com/benchviz/resultanalyzer/storage/fs"
)

// impl is an fs.FS backed by Google Cloud Storage.
type impl struct {
	bucket *storage.BucketHandle
}

// Auth selects the credentials used to reach Cloud Storage. The zero
// Auth uses Application Default Credentials.
type Auth struct {
	// CredentialsFile is a service account key file.
	CredentialsFile string
	// AccessToken is an OAuth2 access token, for example from
	// "gcloud auth print-access-token".
	AccessToken string
	// Anonymous disables authentication, for public buckets and
	// emulators.
	Anonymous bool
}

// ClientOptions returns the client options for a.
func (a Auth) ClientOptions() []option.ClientOption {
	switch {
	case a.Anonymous:
		return []option.ClientOption{option.WithoutAuthentication()}
	case a.CredentialsFile != "":
		return []option.ClientOption{option.WithCredentialsFile(a.CredentialsFile)}
	case a.AccessToken != "":
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: a.AccessToken, TokenType: "Bearer"})
		return []option.ClientOption{option.WithTokenSource(ts)}
	}
	return nil
}

// NewFS constructs an FS that writes to the provided bucket.
func NewFS(ctx context.Context, bucketName string, auth Auth, opts ...option.ClientOption) (fs.FS, error) {
	client, err := storage.NewClient(ctx, append(auth.ClientOptions(), opts...)...)
	if err != nil {
		return nil, err
	}
	return &impl{client.Bucket(bucketName)}, nil
}

// NewWriter creates a new object with the given metadata. Its content
// type is derived from the extension of name.
func (fs *impl) NewWriter(ctx context.Context, name string, metadata map[string]string) (fs.Writer, error) {
	ctx, cancel := context.WithCancel(ctx)
	w := fs.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType(name)
	w.Metadata = metadata
	return &wrapper{w, cancel}, nil
}

// contentType returns the MIME type of a chart or report file.
func contentType(name string) string {
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// wrapper makes a *storage.Writer implement fs.Writer. Canceling the
// writer's context aborts the upload.
type wrapper struct {
	*storage.Writer
	cancel context.CancelFunc
}

func (w *wrapper) Close() error {
	defer w.cancel()
	return w.Writer.Close()
}

func (w *wrapper) CloseWithError(error) error {
	w.cancel()
	// Close reports the cancellation; the object is not created.
	w.Writer.Close()
	return nil
}
