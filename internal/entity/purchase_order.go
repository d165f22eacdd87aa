package entity

import (
	"fmt"
	"strings"
	"time"
)

// LineItem is one product line of a purchase order.
type LineItem struct {
	ExternalID string  `json:"externalId"`
	LineNumber int     `json:"lineNumber"`
	Item       string  `json:"item"`
	Quantity   float64 `json:"quantity"`
	Comments   string  `json:"comments"`
}

// PurchaseOrder is the fixed record shape the review and export surfaces
// operate on. Header fields are shared by every exported row; LineItems keep
// insertion order, which is also export order.
type PurchaseOrder struct {
	CustomerInternalID  string     `json:"customerInternalId"`
	Subbrand            string     `json:"subbrand"`
	Date                string     `json:"date"`
	CustomerRequestDate string     `json:"customerRequestDate"`
	PONumber            string     `json:"poNumber"`
	Comment             string     `json:"comment"`
	SalesOrderType      string     `json:"salesOrderType"`
	BuySession          string     `json:"buySession"`
	ShipToSelect        string     `json:"shipToSelect"`
	ShippingCarrier     string     `json:"shippingCarrier"`
	LineItems           []LineItem `json:"lineItems"`
}

// DefaultSalesOrderType is stamped on every record; it is never extracted.
const DefaultSalesOrderType = "Bulk"

// ExternalID derives the synthetic per-line identifier: "DAR", the 3-letter
// uppercase month abbreviation of the extraction time, and the 1-based line
// position zero-padded to 4 digits. The month is the current month at
// extraction time, not any date found in the document.
func ExternalID(at time.Time, index int) string {
	return fmt.Sprintf("DAR%s%04d", strings.ToUpper(at.Format("Jan")), index+1)
}

// RecordDate formats the extraction timestamp for the Date column (US-style
// MM/DD/YYYY).
func RecordDate(at time.Time) string {
	return at.Format("01/02/2006")
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the session's mutable record.
func (p *PurchaseOrder) Clone() *PurchaseOrder {
	if p == nil {
		return nil
	}
	cp := *p
	cp.LineItems = make([]LineItem, len(p.LineItems))
	copy(cp.LineItems, p.LineItems)
	return &cp
}

// SetField replaces one header field by its JSON key. Any string value is
// accepted, including for fields that logically hold dates.
func (p *PurchaseOrder) SetField(field, value string) error {
	switch field {
	case "customerInternalId":
		p.CustomerInternalID = value
	case "subbrand":
		p.Subbrand = value
	case "date":
		p.Date = value
	case "customerRequestDate":
		p.CustomerRequestDate = value
	case "poNumber":
		p.PONumber = value
	case "comment":
		p.Comment = value
	case "salesOrderType":
		p.SalesOrderType = value
	case "buySession":
		p.BuySession = value
	case "shipToSelect":
		p.ShipToSelect = value
	case "shippingCarrier":
		p.ShippingCarrier = value
	default:
		return fmt.Errorf("unknown header field %q", field)
	}
	return nil
}
