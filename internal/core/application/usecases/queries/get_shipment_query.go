package queries

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
)

// GetShipmentQuery retrieves a single shipment by its internal identifier.
//
// Example:
//
//	query, err := NewGetShipmentQuery(id)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetShipmentQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type GetShipmentQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query to fetch a shipment by id.
func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentQueryIsNotConstructed if validation fails.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the identifier to look up.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}
