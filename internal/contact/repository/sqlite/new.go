package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"scheduling-assistant/internal/contact/repository"
	"scheduling-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the contact domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("contact/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Open opens (or creates) the SQLite database at path and ensures the schema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open contacts database: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS contacts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure contacts schema: %w", err)
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("contact/repository/sqlite.%s", method)
}
