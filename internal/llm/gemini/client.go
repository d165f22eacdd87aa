package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/autopo-labs/autopo/internal/common"
	"github.com/autopo-labs/autopo/internal/llm"
)

// analyzeRequest is the JSON body of the extraction call. The file travels
// base64-encoded because the transport is a JSON request body.
type analyzeRequest struct {
	FileBase64 string         `json:"fileBase64"`
	MimeType   string         `json:"mimeType"`
	TextParts  []llm.TextPart `json:"textParts"`
	Config     analyzeConfig  `json:"config"`
}

type analyzeConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

// ExtractFields implements llm.FieldExtractor. A single failed attempt
// surfaces the error to the caller; there is no retry policy.
func (c *Client) ExtractFields(ctx context.Context, fileBytes []byte, mimeType string) (llm.POFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("extract.start",
		"req_id", rid,
		"mime_type", mimeType,
		"bytes", len(fileBytes),
	)

	body := analyzeRequest{
		FileBase64: base64.StdEncoding.EncodeToString(fileBytes),
		MimeType:   mimeType,
		TextParts:  llm.BuildTextParts(),
		Config:     analyzeConfig{ResponseMimeType: "application/json"},
	}

	raw, status, err := llm.SendJSON(ctx, c.hc, c.cfg.URL, body, c.headers(), c.log)
	if err != nil {
		if status != 0 {
			svcErr := common.ServiceError(status, bestEffortErrorBody(raw))
			c.log.Error("extract.service_error",
				"req_id", rid, "status", status,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.POFields{}, raw, svcErr
		}
		c.log.Error("extract.transport_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.POFields{}, nil, common.TransportError("send analyze request", err)
	}

	fields, opaque := llm.DecodePayload(raw, c.log)
	if fields == nil {
		// Degraded shape: tolerated at this layer, downstream mapping
		// yields all-blank defaults.
		c.log.Warn("extract.opaque_payload",
			"req_id", rid, "text_len", len(opaque),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.POFields{}, raw, nil
	}

	sanitized, _ := llm.SanitizeFields(fields, c.log)
	cleanJSON, err := json.Marshal(sanitized)
	if err != nil {
		return llm.POFields{}, raw, common.NewAppError(common.CodeDecode, "encode sanitized payload", err)
	}

	if err := llm.ValidateJSONAgainstSchema(llm.BuildPOJSONSchema(), cleanJSON); err != nil {
		// Best-effort mapping still happens; the schema check only flags drift.
		c.log.Warn("extract.schema_mismatch", "req_id", rid, "error", err)
	}

	var out llm.POFields
	if err := json.Unmarshal(cleanJSON, &out); err != nil {
		return llm.POFields{}, raw, common.NewAppError(common.CodeDecode, "unmarshal fields", err)
	}

	c.log.Info("extract.ok",
		"req_id", rid,
		"po_number", out.PONumber,
		"line_items", len(out.LineItems),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, cleanJSON, nil
}

func (c *Client) headers() map[string]string {
	if c.cfg.APIKey == "" {
		return nil
	}
	return map[string]string{"x-goog-api-key": c.cfg.APIKey}
}

// bestEffortErrorBody extracts a readable message from an error payload,
// tolerating an undecodable body.
func bestEffortErrorBody(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var e struct {
		Error any `json:"error"`
	}
	if err := json.Unmarshal(raw, &e); err == nil && e.Error != nil {
		if s, ok := e.Error.(string); ok {
			return s
		}
		if b, err := json.Marshal(e.Error); err == nil {
			return string(b)
		}
	}
	return string(raw)
}
