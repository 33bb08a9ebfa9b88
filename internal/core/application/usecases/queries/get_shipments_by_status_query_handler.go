package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipmentsByStatusQueryHandler lists shipments filtered by status.
type GetShipmentsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsByStatusQueryHandler creates a handler for status-filtered listings.
func NewGetShipmentsByStatusQueryHandler(db *gorm.DB) GetShipmentsByStatusQueryHandler {
	return GetShipmentsByStatusQueryHandler{db: db}
}

// Handle executes the query.
// Returns an empty slice, not nil, when no shipments are in the status.
// Results are sorted by creation time, newest first.
func (h GetShipmentsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsByStatusQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+shipmentColumns+`
		FROM shipments
		WHERE status = ?
		ORDER BY created_at DESC, id
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShipmentRows(rows)
}
