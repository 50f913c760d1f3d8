package database

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// DB wraps sql.DB with outcome journal methods
type DB struct {
	*sql.DB
}

// New creates a new database connection
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "database open failed")
	}

	// Enable WAL mode for better concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA synchronous=NORMAL")

	return &DB{db}, nil
}

// InitSchema creates all necessary tables
func (db *DB) InitSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS ping_outcomes (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        session_id TEXT NOT NULL,
        seq INTEGER NOT NULL,
        timestamp DATETIME NOT NULL,
        target TEXT NOT NULL,
        strategy TEXT NOT NULL,
        success BOOLEAN NOT NULL,
        text TEXT,
        rtt_ms REAL,
        error_kind TEXT,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );

    CREATE INDEX IF NOT EXISTS idx_outcomes_timestamp ON ping_outcomes(timestamp);
    CREATE INDEX IF NOT EXISTS idx_outcomes_target_timestamp ON ping_outcomes(target, timestamp);
    `

	if _, err := db.Exec(schema); err != nil {
		return errors.Wrap(err, "schema creation failed")
	}

	return nil
}
