package entity

import (
	"testing"
	"time"
)

func TestExternalID(t *testing.T) {
	jun := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	dec := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		at    time.Time
		index int
		want  string
	}{
		{name: "first line in june", at: jun, index: 0, want: "DARJUN0001"},
		{name: "second line in june", at: jun, index: 1, want: "DARJUN0002"},
		{name: "serial is zero padded", at: jun, index: 41, want: "DARJUN0042"},
		{name: "four digit serial", at: jun, index: 9998, want: "DARJUN9999"},
		{name: "december abbreviation", at: dec, index: 0, want: "DARDEC0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExternalID(tt.at, tt.index); got != tt.want {
				t.Errorf("ExternalID(%v, %d) = %q, want %q", tt.at, tt.index, got, tt.want)
			}
		})
	}
}

func TestRecordDate(t *testing.T) {
	at := time.Date(2025, time.June, 5, 23, 59, 0, 0, time.UTC)
	if got, want := RecordDate(at), "06/05/2025"; got != want {
		t.Errorf("RecordDate() = %q, want %q", got, want)
	}
}

func TestSetField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
		check   func(p *PurchaseOrder) bool
	}{
		{
			name:  "po number",
			field: "poNumber", value: "PO-77",
			check: func(p *PurchaseOrder) bool { return p.PONumber == "PO-77" },
		},
		{
			name:  "ship to",
			field: "shipToSelect", value: "Dock 4",
			check: func(p *PurchaseOrder) bool { return p.ShipToSelect == "Dock 4" },
		},
		{
			name:  "date accepts any string",
			field: "date", value: "not a date",
			check: func(p *PurchaseOrder) bool { return p.Date == "not a date" },
		},
		{
			name:  "line items is not a header field",
			field: "lineItems", value: "x", wantErr: true,
		},
		{
			name:  "unknown field",
			field: "totallyUnknown", value: "x", wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PurchaseOrder
			err := p.SetField(tt.field, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetField(%q) error = %v, wantErr %v", tt.field, err, tt.wantErr)
			}
			if err == nil && !tt.check(&p) {
				t.Errorf("SetField(%q, %q) did not apply", tt.field, tt.value)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := &PurchaseOrder{
		PONumber:  "PO1",
		LineItems: []LineItem{{LineNumber: 1, Item: "Widget"}},
	}
	cp := orig.Clone()
	cp.PONumber = "PO2"
	cp.LineItems[0].Item = "Gadget"

	if orig.PONumber != "PO1" {
		t.Errorf("clone mutated original header: %q", orig.PONumber)
	}
	if orig.LineItems[0].Item != "Widget" {
		t.Errorf("clone mutated original line items: %q", orig.LineItems[0].Item)
	}
}

func TestCloneNil(t *testing.T) {
	var p *PurchaseOrder
	if p.Clone() != nil {
		t.Error("Clone of nil record should be nil")
	}
}
