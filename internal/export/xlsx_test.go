package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWorkbook(t *testing.T) {
	data, err := Workbook(sampleRecord())
	if err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Purchase Order")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 items", len(rows))
	}
	if len(rows[0]) != 15 {
		t.Errorf("header columns = %d, want 15", len(rows[0]))
	}
	if rows[0][0] != "External ID" || rows[0][14] != "Comments" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "DARJUN0001" {
		t.Errorf("first item external id = %q", rows[1][0])
	}
	if rows[1][12] != "Widget" {
		t.Errorf("first item name = %q", rows[1][12])
	}
	if rows[1][13] != "10" {
		t.Errorf("first item quantity cell = %q", rows[1][13])
	}
}
