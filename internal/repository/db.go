package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS extraction_history (
	id          TEXT PRIMARY KEY,
	source      TEXT NOT NULL,
	po_number   TEXT NOT NULL DEFAULT '',
	line_count  INTEGER NOT NULL DEFAULT 0,
	record_json TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_extraction_history_created_at
	ON extraction_history (created_at DESC);
`

// Open opens the history database at path and applies the schema. SQLite in
// WAL mode is plenty for a single-session tool.
func Open(path string, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}

	logger.Info("history.db.open", "path", path)
	return db, nil
}

// Close closes the database, logging rather than propagating the error.
func Close(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := db.Close(); err != nil {
		logger.Warn("history.db.close_error", "error", err)
	}
}
