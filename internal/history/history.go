// Package history records offline validation runs in a local SQLite
// database, so repeated CLI runs over the same plan file are comparable
// over time.
package history

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store is the local validation-run history database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite history database at dir/history.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS validation_runs (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		plan_path    TEXT NOT NULL,
		plan_hash    TEXT NOT NULL,
		week_number  INTEGER NOT NULL,
		valid        INTEGER NOT NULL,
		score        INTEGER NOT NULL,
		error_count  INTEGER NOT NULL,
		warning_count INTEGER NOT NULL,
		fix_applied  INTEGER NOT NULL,
		run_at       TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history table: %w", err)
	}

	return &Store{db: db}, nil
}

// Run is one recorded validation.
type Run struct {
	PlanPath   string
	PlanHash   string
	WeekNumber int
	Valid      bool
	Score      int
	Errors     int
	Warnings   int
	FixApplied bool
	RunAt      time.Time
}

// Record appends one validation run.
func (s *Store) Record(r Run) error {
	_, err := s.db.Exec(
		`INSERT INTO validation_runs (plan_path, plan_hash, week_number, valid, score, error_count, warning_count, fix_applied)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.PlanPath, r.PlanHash, r.WeekNumber, r.Valid, r.Score, r.Errors, r.Warnings, r.FixApplied,
	)
	return err
}

// Recent returns the latest runs for a plan file, newest first.
func (s *Store) Recent(planPath string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT plan_path, plan_hash, week_number, valid, score, error_count, warning_count, fix_applied, run_at
		 FROM validation_runs WHERE plan_path = ? ORDER BY id DESC LIMIT ?`,
		planPath, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.PlanPath, &r.PlanHash, &r.WeekNumber, &r.Valid, &r.Score, &r.Errors, &r.Warnings, &r.FixApplied, &r.RunAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the history database.
func (s *Store) Close() error {
	return s.db.Close()
}

// HashFile computes the SHA-256 hash of a file, used to tell whether a plan
// file changed between runs.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
