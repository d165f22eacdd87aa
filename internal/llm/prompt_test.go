package llm

import (
	"strings"
	"testing"
)

func TestBuildInstructionEnumeratesRequestedFields(t *testing.T) {
	instruction := BuildInstruction()
	for _, field := range []string{
		"customerInternalId",
		"customerRequestDate",
		"poNumber",
		"shipToSelect",
		"lineItems",
	} {
		if !strings.Contains(instruction, field) {
			t.Errorf("instruction missing field %q", field)
		}
	}
}

func TestBuildTextParts(t *testing.T) {
	parts := BuildTextParts()
	if len(parts) != 1 {
		t.Fatalf("text parts = %d, want 1", len(parts))
	}
	if parts[0].Text != BuildInstruction() {
		t.Error("text part should carry the instruction")
	}
}
