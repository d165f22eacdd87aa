package llm

import (
	"encoding/json"
	"log/slog"
)

// The extraction service's envelope is not fixed: the fields object may sit
// directly under "text", under one of two known nested paths, appear as the
// whole body, and may itself be a JSON-encoded string needing a second
// decode pass. Each strategy is a pure probe of the decoded envelope; the
// first that applies wins.
type decodeStrategy func(v any) (any, bool)

var decodeStrategies = []decodeStrategy{
	directText,
	outputContentText,
	candidatesContentText,
}

func directText(v any) (any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	t, ok := m["text"]
	return t, ok
}

func outputContentText(v any) (any, bool) {
	return nestedContentText(v, "output")
}

func candidatesContentText(v any) (any, bool) {
	return nestedContentText(v, "candidates")
}

// nestedContentText probes <key>[0].content[0].text.
func nestedContentText(v any, key string) (any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	arr, ok := m[key].([]any)
	if !ok || len(arr) == 0 {
		return nil, false
	}
	entry, ok := arr[0].(map[string]any)
	if !ok {
		return nil, false
	}
	content, ok := entry["content"].([]any)
	if !ok || len(content) == 0 {
		return nil, false
	}
	inner, ok := content[0].(map[string]any)
	if !ok {
		return nil, false
	}
	t, ok := inner["text"]
	return t, ok
}

// DecodePayload locates the extraction payload inside a success response
// body. When no shape matches, or the payload is a string that is not JSON,
// the value degrades to opaque text: fields is nil and the caller maps
// all-blank defaults. This degradation is intentional and never an error.
func DecodePayload(body []byte, logger *slog.Logger) (fields map[string]any, opaque string) {
	if logger == nil {
		logger = slog.Default()
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		logger.Warn("extract.decode.opaque_body", "error", err, "bytes", len(body))
		return nil, string(body)
	}

	for _, strategy := range decodeStrategies {
		val, ok := strategy(v)
		if !ok {
			continue
		}
		return resolvePayload(val, logger)
	}

	// No known wrapper: the body itself may be the fields object.
	if m, ok := v.(map[string]any); ok {
		return m, ""
	}
	return resolvePayload(v, logger)
}

// resolvePayload turns a located payload value into a fields object, running
// the second decode pass when the value is a JSON-encoded string.
func resolvePayload(val any, logger *slog.Logger) (map[string]any, string) {
	switch t := val.(type) {
	case map[string]any:
		return t, ""
	case string:
		var m map[string]any
		if err := json.Unmarshal([]byte(t), &m); err != nil {
			logger.Warn("extract.decode.opaque_text", "error", err, "text_len", len(t))
			return nil, t
		}
		return m, ""
	default:
		logger.Warn("extract.decode.unexpected_payload_type")
		return nil, ""
	}
}
