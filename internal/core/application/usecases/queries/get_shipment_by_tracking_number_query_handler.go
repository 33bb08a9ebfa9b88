package queries

import (
	"context"

	"tracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentByTrackingNumberQueryHandler resolves tracking numbers to
// shipment read models.
type GetShipmentByTrackingNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByTrackingNumberQueryHandler creates a handler for tracking
// number lookups.
func NewGetShipmentByTrackingNumberQueryHandler(db *gorm.DB) GetShipmentByTrackingNumberQueryHandler {
	return GetShipmentByTrackingNumberQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ObjectNotFoundError when no shipment carries the tracking number.
func (h GetShipmentByTrackingNumberQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByTrackingNumberQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+shipmentColumns+`
		FROM shipments
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Rows()
	if err != nil {
		return ShipmentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentResponse{}, err
		}
		return ShipmentResponse{}, errs.NewObjectNotFoundError(
			"trackingNumber", query.TrackingNumber().String())
	}

	return scanShipmentRow(rows)
}
