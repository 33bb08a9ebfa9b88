package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllShipmentsQueryHandler lists shipments page by page.
type GetAllShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShipmentsQueryHandler creates a handler for paged shipment listings.
func NewGetAllShipmentsQueryHandler(db *gorm.DB) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{db: db}
}

// Handle executes the query.
// Results are sorted by creation time, newest first, with id as a tiebreaker
// so pages are stable. A page past the end returns an empty slice.
func (h GetAllShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+shipmentColumns+`
		FROM shipments
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, query.PageSize(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShipmentRows(rows)
}
