package llm

import "context"

// POFields is the normalized shape we want from the extraction service.
// Everything is optional; absent fields map to blank defaults downstream.
type POFields struct {
	CustomerInternalID  string           `json:"customerInternalId,omitempty"`
	CustomerRequestDate string           `json:"customerRequestDate,omitempty"`
	PONumber            string           `json:"poNumber,omitempty"`
	ShipToSelect        string           `json:"shipToSelect,omitempty"`
	LineItems           []LineItemFields `json:"lineItems,omitempty"`
}

// LineItemFields is one extracted line entry before normalization.
type LineItemFields struct {
	Item     string  `json:"item,omitempty"`
	Quantity float64 `json:"quantity,omitempty"`
}

// FieldExtractor is the interface the normalization layer depends on.
// The raw response body is returned alongside the fields for audit logging.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, fileBytes []byte, mimeType string) (POFields, []byte /*rawJSON*/, error)
}
