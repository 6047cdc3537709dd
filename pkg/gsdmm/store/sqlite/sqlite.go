package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/gsdmm/pkg/gsdmm/internalerr"
	"github.com/cognicore/gsdmm/pkg/gsdmm/store"
)

// timeLayout is RFC 3339 with fixed-width nanoseconds so that the
// stored strings sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// sqliteStore implements the Store interface using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes
// the schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	k INTEGER NOT NULL,
	alpha REAL NOT NULL,
	beta REAL NOT NULL,
	iters INTEGER NOT NULL,
	seed INTEGER NOT NULL,
	vocab_size INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_assignments (
	run_id TEXT NOT NULL,
	doc_index INTEGER NOT NULL,
	url TEXT,
	title TEXT,
	label INTEGER NOT NULL,
	PRIMARY KEY(run_id, doc_index),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_assignments_label
	ON run_assignments(run_id, label);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun stores a run and its assignments in one transaction.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("run ID empty: %w", internalerr.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs (id, created_at, k, alpha, beta, iters, seed, vocab_size)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.UTC().Format(timeLayout),
		r.K, r.Alpha, r.Beta, r.Iters, r.Seed, r.VocabSize)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM run_assignments WHERE run_id = ?`, r.ID); err != nil {
		return err
	}
	for _, a := range r.Assignments {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO run_assignments (run_id, doc_index, url, title, label)
			VALUES (?, ?, ?, ?, ?)`,
			r.ID, a.DocIndex, a.URL, a.Title, a.Label)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetRun returns a run with its assignments in corpus order.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, k, alpha, beta, iters, seed, vocab_size
		FROM runs WHERE id = ?`, id)

	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return store.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return store.Run{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT doc_index, url, title, label
		FROM run_assignments WHERE run_id = ? ORDER BY doc_index`, id)
	if err != nil {
		return store.Run{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var a store.Assignment
		if err := rows.Scan(&a.DocIndex, &a.URL, &a.Title, &a.Label); err != nil {
			return store.Run{}, err
		}
		r.Assignments = append(r.Assignments, a)
	}
	return r, rows.Err()
}

// ListRuns returns the most recent runs, newest first, without assignments.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, k, alpha, beta, iters, seed, vocab_size
		FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (store.Run, error) {
	var r store.Run
	var created string
	if err := row.Scan(&r.ID, &created, &r.K, &r.Alpha, &r.Beta,
		&r.Iters, &r.Seed, &r.VocabSize); err != nil {
		return store.Run{}, err
	}
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return store.Run{}, fmt.Errorf("parse created_at: %w", err)
	}
	r.CreatedAt = t
	return r, nil
}
