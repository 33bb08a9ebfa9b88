// Package ports defines collaborator interfaces for the shipment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Records are keyed by internal id and by the unique tracking number; the
// store's unique constraint on the tracking number is the final arbiter of
// uniqueness.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// Returns errs.ObjectAlreadyExistsError when the tracking number collides
	// with an existing record; callers treat that as a retryable creation
	// failure.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The shipment must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetForUpdate retrieves a shipment by id while holding a per-row write
	// lock for the remainder of the surrounding transaction. Concurrent
	// read-modify-write sequences against the same id serialize on this lock,
	// so a status-transition check is always evaluated against the most
	// recent committed status.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment by its external tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber shipment.TrackingNumber) (*shipment.Shipment, error)

	// GetAllByStatus retrieves all shipments currently in the given status.
	GetAllByStatus(ctx context.Context, status shipment.Status) ([]*shipment.Shipment, error)

	// GetAllOverdue retrieves all non-terminal shipments whose estimated
	// delivery is strictly before now.
	GetAllOverdue(ctx context.Context, now time.Time) ([]*shipment.Shipment, error)

	// Delete removes a shipment permanently. There is no soft delete.
	// Returns errs.ObjectNotFoundError when no record exists for the id.
	Delete(ctx context.Context, id kernel.UUID) error
}
