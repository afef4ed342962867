// Package store persists the demo dataset and the user's view state in a
// single SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps the database file. The zero value is unusable; construct with
// Open.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rows (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			size INTEGER NOT NULL,
			modified_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_rows_name ON rows(name);`,
		`CREATE TABLE IF NOT EXISTS view_state (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// Row is one entry of the demo dataset.
type Row struct {
	ID       int64
	Name     string
	Kind     string
	Size     int64
	Modified time.Time
}

var seedKinds = []string{"document", "image", "archive", "audio", "video"}

// Seed replaces the dataset with n deterministic rows, so repeated runs and
// tests see identical data.
func (s *Store) Seed(ctx context.Context, n int) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rows`); err != nil {
		return fmt.Errorf("clear rows: %w", err)
	}

	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		kind := seedKinds[i%len(seedKinds)]
		name := fmt.Sprintf("%s-%04d.%s", kind, i, kindExt(kind))
		size := int64((i*7919)%100000) * 64
		modified := base.Add(time.Duration(i) * 37 * time.Minute)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rows(id, name, kind, size, modified_unixms) VALUES(?, ?, ?, ?, ?)`,
			int64(i+1), name, kind, size, modified.UnixMilli(),
		); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}
	return tx.Commit()
}

func kindExt(kind string) string {
	switch kind {
	case "image":
		return "png"
	case "archive":
		return "tar"
	case "audio":
		return "flac"
	case "video":
		return "mkv"
	default:
		return "txt"
	}
}

// Rows returns the whole dataset in primary-key order.
func (s *Store) Rows(ctx context.Context) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, kind, size, modified_unixms FROM rows ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var ms int64
		if err := rows.Scan(&r.ID, &r.Name, &r.Kind, &r.Size, &ms); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		r.Modified = time.UnixMilli(ms).UTC()
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// CountRows reports the dataset size.
func (s *Store) CountRows(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM rows`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}
	return n, nil
}
