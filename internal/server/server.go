// Package server exposes the review session over an HTTP JSON API.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/autopo-labs/autopo/internal/common"
	"github.com/autopo-labs/autopo/internal/repository"
	"github.com/autopo-labs/autopo/internal/session"
)

// Server wires the session and history onto an HTTP mux.
type Server struct {
	session *session.Session
	history repository.HistoryRepository // optional
	logger  *slog.Logger
}

func New(sess *session.Session, history repository.HistoryRepository, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{session: sess, history: history, logger: logger}
}

// Routes registers all API handlers on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/session", s.handleSession)
	mux.HandleFunc("POST /api/session/field", s.handleSetField)
	mux.HandleFunc("POST /api/session/lineitem", s.handleSetLineItem)
	mux.HandleFunc("GET /api/export/tsv", s.handleExportTSV)
	mux.HandleFunc("GET /api/export/csv", s.handleExportCSV)
	mux.HandleFunc("GET /api/export/xlsx", s.handleExportXLSX)
	mux.HandleFunc("POST /api/demo", s.handleDemo)
	mux.HandleFunc("POST /api/reset", s.handleReset)
	mux.HandleFunc("GET /api/history", s.handleHistory)

	return mux
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("http.encode_response_error", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps application errors onto HTTP statuses: local input
// problems are the client's fault, extraction-path failures are upstream.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrAnalysisInProgress):
		status = http.StatusConflict
	case common.IsCode(err, common.CodeInput):
		status = http.StatusBadRequest
	case common.IsCode(err, common.CodeService), common.IsCode(err, common.CodeTransport):
		status = http.StatusBadGateway
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
