// Package demo produces a sample purchase order for previewing the review
// surface without calling the remote extraction service.
package demo

import (
	"time"

	"github.com/autopo-labs/autopo/internal/entity"
)

// Record returns the hardcoded sample record. It is a pure function of the
// given time: external IDs and the Date column follow the same derivation
// rules as real extraction output.
func Record(at time.Time) *entity.PurchaseOrder {
	return &entity.PurchaseOrder{
		CustomerInternalID:  "2513",
		Date:                entity.RecordDate(at),
		CustomerRequestDate: "2025-12-01",
		PONumber:            "DEMO-PO-2025",
		SalesOrderType:      entity.DefaultSalesOrderType,
		ShipToSelect:        "123 Distribution Center, NY",
		LineItems: []entity.LineItem{
			{
				ExternalID: entity.ExternalID(at, 0),
				LineNumber: 1,
				Item:       "Mens Performance Tee - Black / L",
				Quantity:   500,
			},
			{
				ExternalID: entity.ExternalID(at, 1),
				LineNumber: 2,
				Item:       "Mens Performance Tee - Black / XL",
				Quantity:   250,
			},
		},
	}
}
