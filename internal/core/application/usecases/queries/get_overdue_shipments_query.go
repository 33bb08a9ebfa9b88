package queries

import (
	"errors"
	"time"

	"tracker/internal/pkg/guard"
)

var (
	ErrGetOverdueShipmentsQueryIsNotConstructed = errors.New(
		"GetOverdueShipmentsQuery must be created via NewGetOverdueShipmentsQuery constructor",
	)
	ErrAsOfIsRequired = errors.New("asOf time is required")
)

// GetOverdueShipmentsQuery retrieves shipments whose estimated delivery has
// passed while they remain in a non-terminal status. The reference time is an
// explicit parameter so callers and tests control the clock.
type GetOverdueShipmentsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueShipmentsQuery creates a query to list overdue shipments as of
// the given reference time.
func NewGetOverdueShipmentsQuery(asOf time.Time) (GetOverdueShipmentsQuery, error) {
	if asOf.IsZero() {
		return GetOverdueShipmentsQuery{}, ErrAsOfIsRequired
	}

	return GetOverdueShipmentsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueShipmentsQueryIsNotConstructed if validation fails.
func (q GetOverdueShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueShipmentsQueryIsNotConstructed)
}

// AsOf returns the reference time shipments are compared against.
func (q GetOverdueShipmentsQuery) AsOf() time.Time {
	return q.asOf
}
