// Package session owns the purchase-order record under review. One logical
// user session exists at a time: a single writer mutates the record through
// edit operations; the internal mutex only serializes transport access.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/autopo-labs/autopo/constants"
	"github.com/autopo-labs/autopo/internal/common"
	"github.com/autopo-labs/autopo/internal/demo"
	"github.com/autopo-labs/autopo/internal/entity"
	"github.com/autopo-labs/autopo/internal/export"
	"github.com/autopo-labs/autopo/internal/repository"
)

// copyAckWindow is how long the "copied" acknowledgment stays visible.
const copyAckWindow = 2 * time.Second

var (
	// ErrAnalysisInProgress refuses a new submission while one is pending.
	ErrAnalysisInProgress = errors.New("analysis already in progress")
	// ErrNoRecord refuses edits and exports before a successful extraction.
	ErrNoRecord = errors.New("no record loaded")
)

// Analyzer produces a normalized purchase order from an uploaded document.
type Analyzer interface {
	Extract(ctx context.Context, fileBytes []byte, mimeType string) (*entity.PurchaseOrder, error)
}

// Session holds the current record and the user-facing status machine.
type Session struct {
	mu          sync.Mutex
	status      constants.AnalysisStatus
	record      *entity.PurchaseOrder
	errMsg      string
	seq         uint64 // bumps on every submission and reset; guards stale completions
	copiedUntil time.Time

	analyzer Analyzer
	history  repository.HistoryRepository // optional
	now      func() time.Time
	logger   *slog.Logger
}

func New(analyzer Analyzer, history repository.HistoryRepository, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		status:   constants.StatusIdle,
		analyzer: analyzer,
		history:  history,
		now:      time.Now,
		logger:   logger,
	}
}

// Snapshot is the read model handed to the transport layer.
type Snapshot struct {
	Status constants.AnalysisStatus `json:"status"`
	Error  string                   `json:"error,omitempty"`
	Record *entity.PurchaseOrder    `json:"record,omitempty"`
	Copied bool                     `json:"copied"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Status: s.status,
		Error:  s.errMsg,
		Record: s.record.Clone(),
		Copied: s.now().Before(s.copiedUntil),
	}
}

// Analyze runs one extraction attempt. Submission is refused while another
// attempt is pending. Each attempt is tagged with a sequence number; if the
// session was reset or resubmitted before the result lands, the stale
// completion is dropped instead of overwriting newer state.
func (s *Session) Analyze(ctx context.Context, fileBytes []byte, mimeType string) (Snapshot, error) {
	s.mu.Lock()
	if !s.status.CanStartAnalysis() {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, ErrAnalysisInProgress
	}
	s.seq++
	seq := s.seq
	s.status = constants.StatusAnalyzing
	s.record = nil
	s.errMsg = ""
	s.mu.Unlock()

	s.logger.Info("session.analyze.start", "seq", seq, "mime_type", mimeType, "bytes", len(fileBytes))
	rec, err := s.analyzer.Extract(ctx, fileBytes, mimeType)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq || s.status != constants.StatusAnalyzing {
		s.logger.Warn("session.analyze.stale_drop", "seq", seq, "current_seq", s.seq)
		return s.snapshotLocked(), nil
	}
	if err != nil {
		s.status = constants.StatusError
		s.errMsg = err.Error()
		s.logger.Error("session.analyze.failed", "seq", seq, "error", err)
		return s.snapshotLocked(), err
	}
	s.status = constants.StatusSuccess
	s.record = rec
	s.logger.Info("session.analyze.ok", "seq", seq, "po_number", rec.PONumber, "line_items", len(rec.LineItems))
	s.saveHistoryLocked(ctx, repository.SourceUpload)
	return s.snapshotLocked(), nil
}

// LoadDemo fills the session with the sample record. Only offered from the
// idle state; it bypasses ANALYZING entirely.
func (s *Session) LoadDemo(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != constants.StatusIdle {
		return s.snapshotLocked(), common.InputError("demo data is only available from the idle state", nil)
	}
	s.seq++
	s.status = constants.StatusSuccess
	s.record = demo.Record(s.now())
	s.errMsg = ""
	s.logger.Info("session.demo.loaded", "seq", s.seq)
	s.saveHistoryLocked(ctx, repository.SourceDemo)
	return s.snapshotLocked(), nil
}

// Reset discards the record and returns to idle from any state. An in-flight
// extraction result arriving afterwards is ignored via the sequence bump.
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.status = constants.StatusIdle
	s.record = nil
	s.errMsg = ""
	s.copiedUntil = time.Time{}
	s.logger.Info("session.reset", "seq", s.seq)
	return s.snapshotLocked()
}

// SetField replaces one header field. No validation: any string is accepted.
func (s *Session) SetField(field, value string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return s.snapshotLocked(), common.InputError(ErrNoRecord.Error(), ErrNoRecord)
	}
	if err := s.record.SetField(field, value); err != nil {
		return s.snapshotLocked(), common.InputError(err.Error(), err)
	}
	return s.snapshotLocked(), nil
}

// SetLineItem replaces one field of the line item at index. Numeric fields
// reject non-numeric input and keep the prior value.
func (s *Session) SetLineItem(index int, field, value string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return s.snapshotLocked(), common.InputError(ErrNoRecord.Error(), ErrNoRecord)
	}
	if index < 0 || index >= len(s.record.LineItems) {
		return s.snapshotLocked(), common.InputError("line item index out of range", nil)
	}
	it := &s.record.LineItems[index]
	switch field {
	case "externalId":
		it.ExternalID = value
	case "lineNumber":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return s.snapshotLocked(), common.InputError("lineNumber must be an integer", err)
		}
		it.LineNumber = n
	case "item":
		it.Item = value
	case "quantity":
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return s.snapshotLocked(), common.InputError("quantity must be numeric", err)
		}
		it.Quantity = q
	case "comments":
		it.Comments = value
	default:
		return s.snapshotLocked(), common.InputError("unknown line item field "+strconv.Quote(field), nil)
	}
	return s.snapshotLocked(), nil
}

// CopyForSheets serializes the record tab-separated for clipboard paste and
// opens the transient "copied" acknowledgment window.
func (s *Session) CopyForSheets() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return "", common.InputError(ErrNoRecord.Error(), ErrNoRecord)
	}
	s.copiedUntil = s.now().Add(copyAckWindow)
	return export.DelimitedText(s.record, export.TabSeparator), nil
}

// DownloadCSV serializes the record comma-separated under its download name.
func (s *Session) DownloadCSV() (filename, payload string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return "", "", common.InputError(ErrNoRecord.Error(), ErrNoRecord)
	}
	return export.CSVFilename(s.record), export.DelimitedText(s.record, export.CommaSeparator), nil
}

// DownloadXLSX renders the record as an XLSX workbook.
func (s *Session) DownloadXLSX() (filename string, data []byte, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return "", nil, common.InputError(ErrNoRecord.Error(), ErrNoRecord)
	}
	data, err = export.Workbook(s.record)
	if err != nil {
		return "", nil, err
	}
	return export.XLSXFilename(s.record), data, nil
}

// saveHistoryLocked persists the current record best-effort; failures are
// logged and never block the extraction path.
func (s *Session) saveHistoryLocked(ctx context.Context, source string) {
	if s.history == nil || s.record == nil {
		return
	}
	recordJSON, err := json.Marshal(s.record)
	if err != nil {
		s.logger.Warn("session.history.encode_error", "error", err)
		return
	}
	entry := repository.ExtractionEntry{
		Source:     source,
		PONumber:   s.record.PONumber,
		LineCount:  len(s.record.LineItems),
		RecordJSON: recordJSON,
	}
	if err := s.history.Save(ctx, entry); err != nil {
		s.logger.Warn("session.history.save_error", "error", err)
	}
}
