package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/autopo-labs/autopo/internal/entity"
	"github.com/autopo-labs/autopo/internal/llm"
)

// Service turns an uploaded document into a normalized purchase-order
// record: one extraction call, then field mapping with local defaults.
type Service struct {
	fields llm.FieldExtractor
	now    func() time.Time
	logger *slog.Logger
}

func NewService(fx llm.FieldExtractor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{fields: fx, now: time.Now, logger: logger}
}

// Extract runs one extraction attempt and maps the result.
func (s *Service) Extract(ctx context.Context, fileBytes []byte, mimeType string) (*entity.PurchaseOrder, error) {
	f, _, err := s.fields.ExtractFields(ctx, fileBytes, mimeType)
	if err != nil {
		return nil, err
	}
	rec := Normalize(f, s.now())
	s.logger.Info("extract.normalized",
		"po_number", rec.PONumber,
		"line_items", len(rec.LineItems),
	)
	return rec, nil
}

// Normalize maps extracted fields onto the fixed record shape. Date and
// SalesOrderType are always stamped locally; Subbrand, Comment, BuySession
// and ShippingCarrier stay blank (placeholders, never extracted). External
// IDs derive from the position and the month at extraction time.
func Normalize(f llm.POFields, at time.Time) *entity.PurchaseOrder {
	rec := &entity.PurchaseOrder{
		CustomerInternalID:  f.CustomerInternalID,
		CustomerRequestDate: f.CustomerRequestDate,
		PONumber:            f.PONumber,
		ShipToSelect:        f.ShipToSelect,
		Date:                entity.RecordDate(at),
		SalesOrderType:      entity.DefaultSalesOrderType,
		LineItems:           make([]entity.LineItem, 0, len(f.LineItems)),
	}
	for i, it := range f.LineItems {
		rec.LineItems = append(rec.LineItems, entity.LineItem{
			ExternalID: entity.ExternalID(at, i),
			LineNumber: i + 1,
			Item:       it.Item,
			Quantity:   it.Quantity,
			Comments:   "",
		})
	}
	return rec
}
