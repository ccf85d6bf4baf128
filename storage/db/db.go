// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db stores benchmark series in a SQL database.
package db

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"golang.org/x/net/context"

	"github.com/benchviz/resultanalyzer/benchseries"
)

// ErrNotFound is returned by LoadSeries and DeleteSeries for an
// unknown series ID.
var ErrNotFound = errors.New("series not found")

// DB is a high-level interface to a database of benchmark series.
// It's safe for concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertSeries  *sql.Stmt
	insertMemory  *sql.Stmt
	insertRequest *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a connection to driverName.
// This is used by the sqlite3 package to register a ConnectHook.
// It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Series (
	SeriesID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Kind VARCHAR(16) NOT NULL,
	Variant VARCHAR(16) NOT NULL,
	Name VARCHAR(255) NOT NULL,
	Source VARCHAR(1024) NOT NULL,
	Created BIGINT NOT NULL{{if not .sqlite3}},
	Index (Kind, Variant, Name){{end}}
);
CREATE TABLE IF NOT EXISTS MemoryObservations (
	SeriesID BIGINT UNSIGNED,
	Seq BIGINT UNSIGNED,
	Timestamp DOUBLE NOT NULL,
	Kilobytes DOUBLE NOT NULL,
	PRIMARY KEY (SeriesID, Seq),
	FOREIGN KEY (SeriesID) REFERENCES Series(SeriesID) ON UPDATE CASCADE ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS RequestObservations (
	SeriesID BIGINT UNSIGNED,
	Seq BIGINT UNSIGNED,
	StartTime DOUBLE NOT NULL,
	Duration DOUBLE NOT NULL,
	StatusCode INT UNSIGNED NOT NULL,
	PRIMARY KEY (SeriesID, Seq),
	FOREIGN KEY (SeriesID) REFERENCES Series(SeriesID) ON UPDATE CASCADE ON DELETE CASCADE
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS SeriesKindVariantName ON Series(Kind, Variant, Name);
{{end}}
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertSeries, err = db.sql.Prepare("INSERT INTO Series(Kind, Variant, Name, Source, Created) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	db.insertMemory, err = db.sql.Prepare("INSERT INTO MemoryObservations(SeriesID, Seq, Timestamp, Kilobytes) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	db.insertRequest, err = db.sql.Prepare("INSERT INTO RequestObservations(SeriesID, Seq, StartTime, Duration, StatusCode) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	return nil
}

// now is a hook for testing
var now = time.Now

// An Entry describes a stored series without its observations.
type Entry struct {
	ID int64
	benchseries.Header
	// Source is where the series was loaded from, usually a file
	// path.
	Source  string
	Created time.Time
	// Len is the number of observations.
	Len int
}

// InsertSeries stores s, recording that it was loaded from source,
// and returns its ID. The series and its observations are written in
// one transaction.
func (db *DB) InsertSeries(ctx context.Context, s *benchseries.Series, source string) (id int64, err error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	res, err := tx.StmtContext(ctx, db.insertSeries).ExecContext(ctx, s.Kind.String(), s.Variant.String(), s.Name, source, now().Unix())
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	switch s.Kind {
	case benchseries.Memory:
		stmt := tx.StmtContext(ctx, db.insertMemory)
		for i, o := range s.Memory() {
			if _, err := stmt.ExecContext(ctx, id, i, o.Timestamp, o.Kilobytes); err != nil {
				return 0, err
			}
		}
	case benchseries.Request:
		stmt := tx.StmtContext(ctx, db.insertRequest)
		for i, o := range s.Requests() {
			if _, err := stmt.ExecContext(ctx, id, i, o.StartTime, o.Duration, o.StatusCode); err != nil {
				return 0, err
			}
		}
	}
	return id, nil
}

// A Query selects stored series. Empty fields match any value.
type Query struct {
	Kind    string
	Variant string
	Name    string
}

func (q Query) where() (string, []interface{}) {
	var conds []string
	var args []interface{}
	for _, c := range []struct{ col, val string }{
		{"Kind", q.Kind},
		{"Variant", q.Variant},
		{"Name", q.Name},
	} {
		if c.val != "" {
			conds = append(conds, c.col+" = ?")
			args = append(args, c.val)
		}
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListSeries returns the stored series matching q, oldest first.
func (db *DB) ListSeries(ctx context.Context, q Query) ([]Entry, error) {
	where, args := q.where()
	rows, err := db.sql.QueryContext(ctx, `SELECT SeriesID, Kind, Variant, Name, Source, Created,
	(SELECT COUNT(*) FROM MemoryObservations m WHERE m.SeriesID = s.SeriesID) +
	(SELECT COUNT(*) FROM RequestObservations r WHERE r.SeriesID = s.SeriesID)
FROM Series s`+where+" ORDER BY SeriesID", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		var kind, variant string
		var created int64
		if err := rows.Scan(&e.ID, &kind, &variant, &e.Name, &e.Source, &created, &e.Len); err != nil {
			return nil, err
		}
		if e.Header, err = benchseries.ParseHeader(kind, variant, e.Name); err != nil {
			return nil, fmt.Errorf("series %d: %w", e.ID, err)
		}
		e.Created = time.Unix(created, 0)
		out = append(out, e)
	}
	return out, rows.Err()
}

// LoadSeries returns the stored series with the given ID.
func (db *DB) LoadSeries(ctx context.Context, id int64) (*benchseries.Series, error) {
	var kind, variant, name string
	err := db.sql.QueryRowContext(ctx, "SELECT Kind, Variant, Name FROM Series WHERE SeriesID = ?", id).Scan(&kind, &variant, &name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("series %d: %w", id, ErrNotFound)
	} else if err != nil {
		return nil, err
	}
	h, err := benchseries.ParseHeader(kind, variant, name)
	if err != nil {
		return nil, fmt.Errorf("series %d: %w", id, err)
	}

	var memory []benchseries.MemoryObservation
	var requests []benchseries.RequestObservation
	var rows *sql.Rows
	if h.Kind == benchseries.Memory {
		rows, err = db.sql.QueryContext(ctx, "SELECT Timestamp, Kilobytes FROM MemoryObservations WHERE SeriesID = ? ORDER BY Seq", id)
	} else {
		rows, err = db.sql.QueryContext(ctx, "SELECT StartTime, Duration, StatusCode FROM RequestObservations WHERE SeriesID = ? ORDER BY Seq", id)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		if h.Kind == benchseries.Memory {
			var o benchseries.MemoryObservation
			if err := rows.Scan(&o.Timestamp, &o.Kilobytes); err != nil {
				return nil, err
			}
			memory = append(memory, o)
		} else {
			var o benchseries.RequestObservation
			if err := rows.Scan(&o.StartTime, &o.Duration, &o.StatusCode); err != nil {
				return nil, err
			}
			requests = append(requests, o)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return benchseries.New(h, memory, requests)
}

// DeleteSeries removes the stored series with the given ID and its
// observations.
func (db *DB) DeleteSeries(ctx context.Context, id int64) (err error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	// Observations are deleted explicitly since foreign keys may
	// not be enforced.
	for _, q := range []string{
		"DELETE FROM MemoryObservations WHERE SeriesID = ?",
		"DELETE FROM RequestObservations WHERE SeriesID = ?",
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM Series WHERE SeriesID = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return fmt.Errorf("series %d: %w", id, ErrNotFound)
	}
	return nil
}

// CountSeries returns the number of stored series.
func (db *DB) CountSeries(ctx context.Context) (int, error) {
	var n int
	err := db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM Series").Scan(&n)
	return n, err
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	for _, stmt := range []*sql.Stmt{db.insertSeries, db.insertMemory, db.insertRequest} {
		if err := stmt.Close(); err != nil {
			return err
		}
	}
	return db.sql.Close()
}
