package server

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/autopo-labs/autopo/constants"
	"github.com/autopo-labs/autopo/internal/common"
)

// maxUploadBytes caps document uploads; multimodal endpoints reject larger
// payloads anyway.
const maxUploadBytes = 20 << 20

type analyzeJSONRequest struct {
	FileBase64 string `json:"fileBase64"`
	MimeType   string `json:"mimeType"`
}

// handleAnalyze accepts either a multipart upload (field "document") or a
// JSON body carrying the already-encoded file.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	fileBytes, mimeType, err := readDocument(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	snap, err := s.session.Analyze(r.Context(), fileBytes, mimeType)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func readDocument(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "multipart/") {
		var req analyzeJSONRequest
		if err := decodeJSONBody(r, &req); err != nil {
			return nil, "", err
		}
		if req.FileBase64 == "" {
			return nil, "", common.InputError("fileBase64 is required", nil)
		}
		data, err := base64.StdEncoding.DecodeString(req.FileBase64)
		if err != nil {
			return nil, "", common.InputError("fileBase64 is not valid base64", err)
		}
		mt := req.MimeType
		if mt == "" {
			mt = "application/octet-stream"
		}
		return data, mt, nil
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		return nil, "", common.InputError("multipart field 'document' is required", err)
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	if !constants.IsAllowedExt(ext) {
		return nil, "", common.InputError("unsupported file type "+strconv.Quote(ext), nil)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", common.InputError("read uploaded file", err)
	}
	return data, constants.MIMEForExt(ext), nil
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.session.Snapshot())
}

type fieldEditRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (s *Server) handleSetField(w http.ResponseWriter, r *http.Request) {
	var req fieldEditRequest
	if err := decodeJSONBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	snap, err := s.session.SetField(req.Field, req.Value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

type lineItemEditRequest struct {
	Index int    `json:"index"`
	Field string `json:"field"`
	Value string `json:"value"`
}

func (s *Server) handleSetLineItem(w http.ResponseWriter, r *http.Request) {
	var req lineItemEditRequest
	if err := decodeJSONBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	snap, err := s.session.SetLineItem(req.Index, req.Field, req.Value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleExportTSV(w http.ResponseWriter, r *http.Request) {
	payload, err := s.session.CopyForSheets()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/tab-separated-values; charset=utf-8")
	_, _ = io.WriteString(w, payload)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	filename, payload, err := s.session.DownloadCSV()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = io.WriteString(w, payload)
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	filename, data, err := s.session.DownloadXLSX()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(data)
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	snap, err := s.session.LoadDemo(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.session.Reset())
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.writeError(w, common.InputError("history is not enabled", nil))
		return
	}
	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}
	entries, err := s.history.ListRecent(r.Context(), limit)
	if err != nil {
		s.logger.Error("http.history.list_error", "error", err)
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func decodeJSONBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.InputError("decode request body", err)
	}
	return nil
}
