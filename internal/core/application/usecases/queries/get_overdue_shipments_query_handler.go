package queries

import (
	"context"

	"tracker/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetOverdueShipmentsQueryHandler lists shipments past their estimated
// delivery that are still in flight. Terminal shipments are never overdue.
type GetOverdueShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueShipmentsQueryHandler creates a handler for overdue listings.
func NewGetOverdueShipmentsQueryHandler(db *gorm.DB) GetOverdueShipmentsQueryHandler {
	return GetOverdueShipmentsQueryHandler{db: db}
}

// Handle executes the query.
// A shipment is overdue when its estimated delivery is strictly before the
// reference time and its status is non-terminal. Results are sorted by
// estimated delivery, most overdue first.
func (h GetOverdueShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	terminal := shipment.TerminalStatuses()
	terminalNames := make([]string, 0, len(terminal))
	for _, s := range terminal {
		terminalNames = append(terminalNames, s.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+shipmentColumns+`
		FROM shipments
		WHERE estimated_delivery < ?
		  AND status NOT IN ?
		ORDER BY estimated_delivery, id
	`, query.AsOf(), terminalNames).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShipmentRows(rows)
}
