package demo

import (
	"testing"
	"time"
)

func TestRecord(t *testing.T) {
	at := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	rec := Record(at)

	if len(rec.LineItems) != 2 {
		t.Fatalf("line items = %d, want 2", len(rec.LineItems))
	}
	for i, it := range rec.LineItems {
		if it.LineNumber != i+1 {
			t.Errorf("LineItems[%d].LineNumber = %d, want %d", i, it.LineNumber, i+1)
		}
	}
	if rec.LineItems[0].ExternalID != "DARMAR0001" || rec.LineItems[1].ExternalID != "DARMAR0002" {
		t.Errorf("external ids = %q, %q", rec.LineItems[0].ExternalID, rec.LineItems[1].ExternalID)
	}
	if rec.SalesOrderType != "Bulk" {
		t.Errorf("SalesOrderType = %q", rec.SalesOrderType)
	}
	if rec.Date != "03/03/2025" {
		t.Errorf("Date = %q", rec.Date)
	}
	if rec.PONumber != "DEMO-PO-2025" {
		t.Errorf("PONumber = %q", rec.PONumber)
	}
}

func TestRecordIsPure(t *testing.T) {
	at := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	a, b := Record(at), Record(at)
	a.LineItems[0].Quantity = 999
	if b.LineItems[0].Quantity == 999 {
		t.Error("records must not share line item storage")
	}
}
