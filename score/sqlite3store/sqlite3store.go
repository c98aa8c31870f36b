// Package sqlite3store keeps the best score with database/sql and the cgo sqlite3 driver
package sqlite3store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS top_score (
	id INTEGER PRIMARY KEY,
	value INTEGER NOT NULL DEFAULT 0,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

const upsertSQL = `
INSERT INTO top_score (id, value, updated_at)
VALUES (1, ?, CURRENT_TIMESTAMP)
ON CONFLICT(id) DO UPDATE SET
	value = excluded.value,
	updated_at = CURRENT_TIMESTAMP;
`

type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path, in memory when path is empty
func Open(path string) (*Store, error) {
	if path == "" {
		path = ":memory:"
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 %q: %w", path, err)
	}
	// One connection keeps an in-memory database alive and serializes writers
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating top_score table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) LoadTopScore(ctx context.Context) (int, error) {
	var value int
	err := s.db.QueryRowContext(ctx, "SELECT value FROM top_score WHERE id = 1").Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("loading top score: %w", err)
	}
	return value, nil
}

func (s *Store) SaveTopScore(ctx context.Context, score int) error {
	if _, err := s.db.ExecContext(ctx, upsertSQL, score); err != nil {
		return fmt.Errorf("saving top score: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
