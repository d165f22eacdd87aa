package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildPOJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// extraction payload as a generic map. Nothing is required: the service is
// allowed to return a partial or even empty object, and the mapping layer
// fills blanks.
func BuildPOJSONSchema() map[string]any {
	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"item":     map[string]any{"type": "string"},
			"quantity": map[string]any{"type": "number", "minimum": 0.0},
		},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"customerInternalId":  map[string]any{"type": "string"},
			"customerRequestDate": map[string]any{"type": "string"},
			"poNumber":            map[string]any{"type": "string"},
			"shipToSelect":        map[string]any{"type": "string"},
			"lineItems":           map[string]any{"type": "array", "items": item},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
