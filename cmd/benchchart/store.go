// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"
	"golang.org/x/net/context"

	"github.com/benchviz/resultanalyzer/benchfmt"
	"github.com/benchviz/resultanalyzer/internal/texttab"
	"github.com/benchviz/resultanalyzer/storage/db"
	_ "github.com/benchviz/resultanalyzer/storage/db/sqlite3"
	"github.com/benchviz/resultanalyzer/storage/fs/local"
)

type dbFlags struct {
	driver string
	dsn    string
}

func (f *dbFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.driver, "driver", "sqlite3", "database `driver`: sqlite3 or mysql")
	cmd.Flags().StringVar(&f.dsn, "dsn", "benchchart.db", "database `source` name")
}

func (f *dbFlags) open() (*db.DB, error) {
	return db.OpenSQL(f.driver, f.dsn)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func (e *env) saveCmd() *cobra.Command {
	var f dbFlags
	cmd := &cobra.Command{
		Use:   "save file...",
		Short: "Store series in a database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := f.open()
			if err != nil {
				return err
			}
			defer d.Close()
			ctx := commandContext(cmd)

			files := benchfmt.Files{Paths: args, AllowLabels: true}
			for files.Scan() {
				s := files.Series()
				id, err := d.InsertSeries(ctx, s, files.Path())
				if err != nil {
					return err
				}
				e.status("saved %s from %s as %d", s.Header, files.Path(), id)
			}
			return files.Err()
		},
	}
	f.register(cmd)
	return cmd
}

func (e *env) listCmd() *cobra.Command {
	var f dbFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := f.open()
			if err != nil {
				return err
			}
			defer d.Close()
			entries, err := d.ListSeries(commandContext(cmd), db.Query{
				Kind:    strings.ToLower(e.kind),
				Variant: normalizeVariant(e.variant),
				Name:    e.name,
			})
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				e.warn("no stored series")
				return nil
			}
			var t texttab.Table
			t.Row().Cells("id", "kind", "variant", "name", "n", "created", "source")
			t.Rule()
			for _, en := range entries {
				t.Row().
					Cell(strconv.FormatInt(en.ID, 10), texttab.Right).
					Cells(en.Kind.String(), en.Variant.String(), en.Name).
					Cell(strconv.Itoa(en.Len), texttab.Right).
					Cells(en.Created.UTC().Format("2006-01-02 15:04:05"), en.Source)
			}
			return t.Format(e.stdout)
		},
	}
	f.register(cmd)
	return cmd
}

func (e *env) exportCmd() *cobra.Command {
	var f dbFlags
	var out string
	cmd := &cobra.Command{
		Use:   "export id...",
		Short: "Write stored series back to results files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := f.open()
			if err != nil {
				return err
			}
			defer d.Close()
			ctx := commandContext(cmd)
			dir := local.NewFS(out)
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("bad series id %q", arg)
				}
				s, err := d.LoadSeries(ctx, id)
				if err != nil {
					return err
				}
				name, err := benchfmt.FileName(s.Header)
				if err != nil {
					return fmt.Errorf("series %d: %w", id, err)
				}
				w, err := dir.NewWriter(ctx, name, nil)
				if err != nil {
					return err
				}
				if err := benchfmt.NewWriter(w).Write(s); err != nil {
					w.CloseWithError(err)
					return err
				}
				if err := w.Close(); err != nil {
					return err
				}
				e.status("exported %d to %s", id, filepath.Join(out, name))
			}
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", ".", "write files to `dir`")
	return cmd
}

// normalizeVariant returns the stored spelling of a variant flag,
// which is matched case-insensitively.
func normalizeVariant(v string) string {
	switch strings.ToLower(v) {
	case "small":
		return "Small"
	case "large":
		return "Large"
	}
	return v
}
