package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS meals (
    id         TEXT PRIMARY KEY,
    guest      TEXT NOT NULL,
    name       TEXT NOT NULL,
    cooked_on  TEXT NOT NULL,
    diet       TEXT,
    notes      TEXT,
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);

CREATE INDEX IF NOT EXISTS idx_meals_cooked_on ON meals(cooked_on DESC);
CREATE INDEX IF NOT EXISTS idx_meals_guest ON meals(guest);
`

// Store is the SQLite-backed meal repository.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and initializes the schema.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
