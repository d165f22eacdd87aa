package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/autopo-labs/autopo/internal/entity"
)

const sheetName = "Purchase Order"

// Workbook renders the record as an XLSX workbook with the same 15 columns
// as the delimited exports. Quantity cells carry numeric values so formulas
// work after import.
func Workbook(rec *entity.PurchaseOrder) ([]byte, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, h := range Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}

	row := 2
	for _, it := range rec.LineItems {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheetName, cell, v)
		}
		fields := rowFields(rec, it)
		for col, v := range fields {
			// Quantity (column 14) goes in as a number.
			if col == 13 && it.Quantity != 0 {
				write(col+1, it.Quantity)
				continue
			}
			write(col+1, v)
		}
		row++
	}

	// Widen the columns that carry free text.
	_ = f.SetColWidth(sheetName, "A", "A", 14) // external id
	_ = f.SetColWidth(sheetName, "J", "J", 32) // ship to
	_ = f.SetColWidth(sheetName, "M", "M", 36) // item
	_ = f.SetColWidth(sheetName, "O", "O", 24) // comments

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
