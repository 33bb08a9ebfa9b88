package queries

import (
	"errors"

	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/guard"
)

var (
	ErrGetShipmentsByStatusQueryIsNotConstructed = errors.New(
		"GetShipmentsByStatusQuery must be created via NewGetShipmentsByStatusQuery constructor",
	)
)

// GetShipmentsByStatusQuery retrieves all shipments currently in a given
// status, for dashboards and operational filtering.
type GetShipmentsByStatusQuery struct {
	status shipment.Status

	guard guard.ConstructorGuard
}

// NewGetShipmentsByStatusQuery creates a query to list shipments by status.
func NewGetShipmentsByStatusQuery(status shipment.Status) (GetShipmentsByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetShipmentsByStatusQuery{}, err
	}

	return GetShipmentsByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentsByStatusQueryIsNotConstructed if validation fails.
func (q GetShipmentsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsByStatusQueryIsNotConstructed)
}

// Status returns the status to filter on.
func (q GetShipmentsByStatusQuery) Status() shipment.Status {
	return q.status
}
