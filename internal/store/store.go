// Package store provides durable, resumable checkpointing for a solve
// run: every decision the driver commits can optionally be mirrored
// into a SQLite database, keyed by run ID, so an interrupted run can be
// resumed without re-solving vertices already decided. This package is
// never imported by internal/engine — only the driver and the demo CLI
// reach for it, matching the spec's "no files... consumed by the core"
// boundary (§6) for the solver core proper.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store wraps a single-writer SQLite connection holding the decisions
// and runs tables.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at path, applying WAL mode and
// the checkpoint schema. Idempotent — safe to call multiple times
// against the same path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open checkpoint database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect checkpoint database: %w", err)
	}

	// SQLite supports exactly one writer; a single pooled connection
	// avoids SQLITE_BUSY contention between the driver's own writes and
	// any concurrent read of the same handle.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("exec %q: %w", p, err)
		}
	}
	return nil
}
