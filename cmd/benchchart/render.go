// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/net/context"

	"github.com/benchviz/resultanalyzer/internal/pipeline"
	"github.com/benchviz/resultanalyzer/storage/fs"
	"github.com/benchviz/resultanalyzer/storage/fs/gcs"
	"github.com/benchviz/resultanalyzer/storage/fs/local"
)

type renderFlags struct {
	out            string
	format         string
	rejectOutliers bool
	auth           gcs.Auth
}

func (e *env) renderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render file...",
		Short: "Write comparison and overlay charts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.render(cmd, args, &f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.out, "out", "o", ".", "write charts to `dir`, or to gs://bucket/prefix")
	fl.StringVar(&f.format, "format", "", "chart `format`: svg, png or pdf (default from -config, or svg)")
	fl.BoolVar(&f.rejectOutliers, "reject-outliers", false, "drop outlying observations before charting")
	fl.StringVar(&f.auth.CredentialsFile, "credentials", "", "Google Cloud credentials `file` for gs:// output")
	fl.StringVar(&f.auth.AccessToken, "token", "", "OAuth2 access `token` for gs:// output")
	fl.BoolVar(&f.auth.Anonymous, "anonymous", false, "write to gs:// without credentials")
	return cmd
}

func (e *env) render(cmd *cobra.Command, args []string, f *renderFlags) error {
	conf, err := e.config()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		conf.Format = f.format
	}
	if cmd.Flags().Changed("reject-outliers") {
		conf.RejectOutliers = f.rejectOutliers
	}
	if err := conf.Validate(); err != nil {
		return err
	}
	base, err := conf.Chart()
	if err != nil {
		return err
	}
	preds, err := e.filter()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	sink, where, err := openSink(ctx, f.out, f.auth)
	if err != nil {
		return err
	}
	written, err := pipeline.Run(ctx, sink, args, conf.Format, pipeline.Options{
		Base:           base,
		Filter:         preds,
		RejectOutliers: conf.RejectOutliers,
		Warn:           e.warn,
	})
	for _, name := range written {
		e.status("wrote %s", path.Join(where, name))
	}
	if err != nil {
		return err
	}
	if len(written) == 0 {
		e.warn("no charts written")
	}
	return nil
}

// openSink returns the file system named by out: a local directory,
// or a Cloud Storage bucket and prefix written as gs://bucket/prefix.
func openSink(ctx context.Context, out string, auth gcs.Auth) (fs.FS, string, error) {
	rest, ok := strings.CutPrefix(out, "gs://")
	if !ok {
		return local.NewFS(out), out, nil
	}
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return nil, "", fmt.Errorf("bad output %q: want gs://bucket/prefix", out)
	}
	sink, err := gcs.NewFS(ctx, bucket, auth)
	if err != nil {
		return nil, "", err
	}
	if prefix != "" {
		sink = prefixFS{sink, prefix}
	}
	return sink, out, nil
}

// prefixFS places every file of an FS under a directory.
type prefixFS struct {
	fs.FS
	prefix string
}

func (p prefixFS) NewWriter(ctx context.Context, name string, metadata map[string]string) (fs.Writer, error) {
	return p.FS.NewWriter(ctx, path.Join(p.prefix, name), metadata)
}
