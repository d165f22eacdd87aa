package llm

// TextPart is one instruction segment of the analyze request body.
type TextPart struct {
	Text string `json:"text"`
}

// BuildInstruction composes the extraction instruction. It enumerates
// exactly the five requested fields; everything else on the record is
// derived or defaulted locally.
func BuildInstruction() string {
	return `Analyze this Purchase Order. Extract specific data points.

EXTRACT ONLY THESE FIELDS:
- customerInternalId
- customerRequestDate
- poNumber
- shipToSelect
- lineItems (item, quantity)
`
}

// BuildTextParts wraps the instruction for the request body.
func BuildTextParts() []TextPart {
	return []TextPart{{Text: BuildInstruction()}}
}
