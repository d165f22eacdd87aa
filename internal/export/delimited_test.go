package export

import (
	"strings"
	"testing"

	"github.com/autopo-labs/autopo/internal/entity"
)

func sampleRecord() *entity.PurchaseOrder {
	return &entity.PurchaseOrder{
		CustomerInternalID:  "55",
		Date:                "06/10/2025",
		CustomerRequestDate: "2025-12-01",
		PONumber:            "PO1",
		SalesOrderType:      "Bulk",
		ShipToSelect:        "Dock 4",
		LineItems: []entity.LineItem{
			{ExternalID: "DARJUN0001", LineNumber: 1, Item: "Widget", Quantity: 10},
			{ExternalID: "DARJUN0002", LineNumber: 2, Item: "Gadget", Quantity: 2.5},
		},
	}
}

func TestDelimitedTextShape(t *testing.T) {
	for _, sep := range []string{TabSeparator, CommaSeparator} {
		t.Run("separator "+sep, func(t *testing.T) {
			out := DelimitedText(sampleRecord(), sep)
			lines := strings.Split(out, "\n")
			if len(lines) != 3 {
				t.Fatalf("lines = %d, want header + 2 rows", len(lines))
			}
			for i, line := range lines {
				if got := len(strings.Split(line, sep)); got != 15 {
					t.Errorf("line %d has %d fields, want 15", i, got)
				}
			}
		})
	}
}

func TestDelimitedTextHeader(t *testing.T) {
	out := DelimitedText(sampleRecord(), TabSeparator)
	header := strings.Split(strings.Split(out, "\n")[0], TabSeparator)
	want := []string{
		"External ID", "Customer Internal ID", "Subbrand", "Date",
		"Customer Request Date", "PO #", "Comment", "Sales Order Type",
		"Buy Session", "Ship To Select", "Shipping Carrier",
		"Line Number", "Item", "Quantity", "Comments",
	}
	if len(header) != len(want) {
		t.Fatalf("header fields = %d, want %d", len(header), len(want))
	}
	for i := range want {
		if header[i] != want[i] {
			t.Errorf("header[%d] = %q, want %q", i, header[i], want[i])
		}
	}
}

func TestDelimitedTextRowValues(t *testing.T) {
	out := DelimitedText(sampleRecord(), TabSeparator)
	row := strings.Split(strings.Split(out, "\n")[1], TabSeparator)

	checks := map[int]string{
		0:  "DARJUN0001", // external id (row specific)
		1:  "55",         // customer internal id
		2:  "",           // subbrand stays blank
		3:  "06/10/2025",
		4:  "2025-12-01",
		5:  "PO1",
		7:  "Bulk",
		9:  "Dock 4",
		11: "1", // line number
		12: "Widget",
		13: "10",
		14: "", // comments
	}
	for i, want := range checks {
		if row[i] != want {
			t.Errorf("row[%d] = %q, want %q", i, row[i], want)
		}
	}

	second := strings.Split(strings.Split(out, "\n")[2], TabSeparator)
	if second[13] != "2.5" {
		t.Errorf("fractional quantity = %q, want 2.5", second[13])
	}
}

func TestDelimitedTextZeroQuantityIsEmpty(t *testing.T) {
	rec := sampleRecord()
	rec.LineItems[0].Quantity = 0
	out := DelimitedText(rec, TabSeparator)
	row := strings.Split(strings.Split(out, "\n")[1], TabSeparator)
	if row[13] != "" {
		t.Errorf("zero quantity = %q, want empty cell", row[13])
	}
}

func TestDelimitedTextIdempotent(t *testing.T) {
	rec := sampleRecord()
	a := DelimitedText(rec, CommaSeparator)
	b := DelimitedText(rec, CommaSeparator)
	if a != b {
		t.Error("serializing the same record twice should be identical")
	}
}

func TestFilenames(t *testing.T) {
	tests := []struct {
		name     string
		poNumber string
		wantCSV  string
		wantXLSX string
	}{
		{name: "with po number", poNumber: "PO1", wantCSV: "PO_PO1.csv", wantXLSX: "PO_PO1.xlsx"},
		{name: "fallback", poNumber: "", wantCSV: "PO_extraction.csv", wantXLSX: "PO_extraction.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &entity.PurchaseOrder{PONumber: tt.poNumber}
			if got := CSVFilename(rec); got != tt.wantCSV {
				t.Errorf("CSVFilename() = %q, want %q", got, tt.wantCSV)
			}
			if got := XLSXFilename(rec); got != tt.wantXLSX {
				t.Errorf("XLSXFilename() = %q, want %q", got, tt.wantXLSX)
			}
		})
	}
}
