package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS drafts (
	employee_id INTEGER NOT NULL,
	kind        TEXT    NOT NULL,
	data        TEXT    NOT NULL,
	updated_at  TEXT    NOT NULL,
	PRIMARY KEY (employee_id, kind)
);

CREATE TABLE IF NOT EXISTS favorites (
	id           TEXT PRIMARY KEY,
	employee_id  INTEGER NOT NULL,
	project_code TEXT NOT NULL,
	phase        TEXT NOT NULL,
	discipline   TEXT NOT NULL,
	activity     TEXT NOT NULL,
	created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_favorites_employee ON favorites(employee_id);
`

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Load opens the store, creating it on first use.
func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	return s.Init()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB exposes the underlying handle for tests.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
