package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Extraction source values stored in history rows.
const (
	SourceUpload = "upload"
	SourceDemo   = "demo"
)

// ExtractionEntry is one persisted extraction result.
type ExtractionEntry struct {
	ID         uuid.UUID `json:"id"`
	Source     string    `json:"source"`
	PONumber   string    `json:"poNumber"`
	LineCount  int       `json:"lineCount"`
	RecordJSON []byte    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

// HistoryRepository persists successful extraction results. History is
// best-effort: callers log failures and move on.
type HistoryRepository interface {
	Save(ctx context.Context, e ExtractionEntry) error
	ListRecent(ctx context.Context, limit int) ([]ExtractionEntry, error)
}

type historyRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewHistoryRepository(db *sql.DB, logger *slog.Logger) HistoryRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &historyRepository{db: db, logger: logger}
}

func (r *historyRepository) Save(ctx context.Context, e ExtractionEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO extraction_history (id, source, po_number, line_count, record_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID.String(), e.Source, e.PONumber, e.LineCount, string(e.RecordJSON),
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		r.logger.Error("history.save_error", "id", e.ID.String(), "error", err)
		return fmt.Errorf("save extraction history: %w", err)
	}
	r.logger.Info("history.saved",
		"id", e.ID.String(),
		"source", e.Source,
		"po_number", e.PONumber,
		"line_count", e.LineCount,
	)
	return nil
}

func (r *historyRepository) ListRecent(ctx context.Context, limit int) ([]ExtractionEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source, po_number, line_count, record_json, created_at
		 FROM extraction_history
		 ORDER BY created_at DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list extraction history: %w", err)
	}
	defer rows.Close()

	var out []ExtractionEntry
	for rows.Next() {
		var (
			e          ExtractionEntry
			id, record string
			createdAt  string
		)
		if err := rows.Scan(&id, &e.Source, &e.PONumber, &e.LineCount, &record, &createdAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse history id %q: %w", id, err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse history timestamp %q: %w", createdAt, err)
		}
		e.RecordJSON = []byte(record)
		out = append(out, e)
	}
	return out, rows.Err()
}
