package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"scheduling-assistant/internal/meeting/repository"
	"scheduling-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the meeting domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("meeting/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Open opens (or creates) the SQLite database at path and ensures the schema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open meetings database: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS meetings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		event_id TEXT NOT NULL,
		subject TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		join_link TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_meetings_session ON meetings(session_id);

	CREATE TABLE IF NOT EXISTS calendar_sessions (
		session_id TEXT PRIMARY KEY,
		connected INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure meetings schema: %w", err)
	}
	return nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("meeting/repository/sqlite.%s", method)
}
