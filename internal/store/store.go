// Package store persists result tables in a SQLite database file.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// RegionsTable is the table name used by `abnum regions --output sqlite`.
const RegionsTable = "regions"

// Store wraps a SQLite database holding all-TEXT result tables.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*Store, error) {
	if path == "" || path == "-" {
		return nil, fmt.Errorf("sqlite output needs a file path, got %q", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory for %s: %w", path, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying handle for read-side callers and tests.
func (s *Store) DB() *sql.DB { return s.db }

// quote renders a SQLite identifier. Column names come from user input
// headers, so embedded quotes are doubled.
func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// ReplaceTable drops any existing table called name and writes rows into a
// fresh one with TEXT columns cols. Short rows are padded with empty strings.
// Everything happens in one transaction.
func (s *Store) ReplaceTable(ctx context.Context, name string, cols []string, rows [][]string) (err error) {
	if len(cols) == 0 {
		return fmt.Errorf("table %s: no columns", name)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quote(name)); err != nil {
		return fmt.Errorf("drop table %s: %w", name, err)
	}

	defs := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = quote(c) + " TEXT"
		marks[i] = "?"
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quote(name), strings.Join(defs, ", "))
	if _, err = tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("create table %s: %w", name, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quote(name), strings.Join(marks, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(cols))
	for _, row := range rows {
		for i := range args {
			if i < len(row) {
				args[i] = row[i]
			} else {
				args[i] = ""
			}
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert into %s: %w", name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// WriteTable is the one-shot form: open path, replace the table, close.
func WriteTable(ctx context.Context, path, name string, cols []string, rows [][]string) error {
	s, err := Open(path)
	if err != nil {
		return err
	}
	if err := s.ReplaceTable(ctx, name, cols, rows); err != nil {
		s.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return s.Close()
}
