package queries

import (
	"errors"

	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/guard"
)

var (
	ErrGetShipmentByTrackingNumberQueryIsNotConstructed = errors.New(
		"GetShipmentByTrackingNumberQuery must be created via NewGetShipmentByTrackingNumberQuery constructor",
	)
)

// GetShipmentByTrackingNumberQuery retrieves a shipment by its external
// tracking number. This is the public lookup path: customers know the
// tracking number, not the internal id.
type GetShipmentByTrackingNumberQuery struct {
	trackingNumber shipment.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetShipmentByTrackingNumberQuery creates a query to fetch a shipment by
// tracking number.
func NewGetShipmentByTrackingNumberQuery(
	trackingNumber shipment.TrackingNumber,
) (GetShipmentByTrackingNumberQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetShipmentByTrackingNumberQuery{}, err
	}

	return GetShipmentByTrackingNumberQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentByTrackingNumberQueryIsNotConstructed if validation fails.
func (q GetShipmentByTrackingNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByTrackingNumberQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number to look up.
func (q GetShipmentByTrackingNumberQuery) TrackingNumber() shipment.TrackingNumber {
	return q.trackingNumber
}
