// Package export serializes a purchase-order record for spreadsheet import:
// tab-separated for clipboard paste, comma-separated for CSV download, and
// an XLSX workbook.
package export

import (
	"strconv"
	"strings"

	"github.com/autopo-labs/autopo/internal/entity"
)

// Columns is the fixed header row of every export, in spreadsheet order.
// Each data row repeats the header-field values and appends the line item's
// own values in the same order.
var Columns = [15]string{
	"External ID",
	"Customer Internal ID",
	"Subbrand",
	"Date",
	"Customer Request Date",
	"PO #",
	"Comment",
	"Sales Order Type",
	"Buy Session",
	"Ship To Select",
	"Shipping Carrier",
	"Line Number",
	"Item",
	"Quantity",
	"Comments",
}

const (
	TabSeparator   = "\t"
	CommaSeparator = ","
)

// DelimitedText serializes the record as newline-joined rows with the given
// field separator. Field values are emitted as-is: embedded separators or
// newlines are not escaped, matching the spreadsheet-paste contract where
// source fields carry no literal tabs. Known limitation for CSV.
func DelimitedText(rec *entity.PurchaseOrder, sep string) string {
	rows := make([]string, 0, len(rec.LineItems)+1)
	rows = append(rows, strings.Join(Columns[:], sep))
	for _, it := range rec.LineItems {
		fields := rowFields(rec, it)
		rows = append(rows, strings.Join(fields[:], sep))
	}
	return strings.Join(rows, "\n")
}

func rowFields(rec *entity.PurchaseOrder, it entity.LineItem) [15]string {
	return [15]string{
		it.ExternalID,
		rec.CustomerInternalID,
		rec.Subbrand,
		rec.Date,
		rec.CustomerRequestDate,
		rec.PONumber,
		rec.Comment,
		rec.SalesOrderType,
		rec.BuySession,
		rec.ShipToSelect,
		rec.ShippingCarrier,
		formatInt(it.LineNumber),
		it.Item,
		formatQuantity(it.Quantity),
		it.Comments,
	}
}

func formatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// formatQuantity renders a zero quantity as an empty cell, matching the
// sheet template the export feeds.
func formatQuantity(q float64) string {
	if q == 0 {
		return ""
	}
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// CSVFilename names the download after the PO number, falling back to a
// generic name when none was extracted.
func CSVFilename(rec *entity.PurchaseOrder) string {
	return "PO_" + baseName(rec) + ".csv"
}

// XLSXFilename is the workbook counterpart of CSVFilename.
func XLSXFilename(rec *entity.PurchaseOrder) string {
	return "PO_" + baseName(rec) + ".xlsx"
}

func baseName(rec *entity.PurchaseOrder) string {
	if rec != nil && rec.PONumber != "" {
		return rec.PONumber
	}
	return "extraction"
}
