package queries

import (
	"context"

	"tracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves a single shipment from the database.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment lookups.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ObjectNotFoundError when no shipment exists for the id.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+shipmentColumns+`
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().String()).Rows()
	if err != nil {
		return ShipmentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentResponse{}, err
		}
		return ShipmentResponse{}, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID().String())
	}

	return scanShipmentRow(rows)
}
