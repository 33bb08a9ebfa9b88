package ports

import (
	"context"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/shipment"
)

// Shipment lifecycle event types, one per accepted mutation.
const (
	EventShipmentCreated       = "SHIPMENT_CREATED"
	EventShipmentStatusUpdated = "SHIPMENT_STATUS_UPDATED"
	EventShipmentDeleted       = "SHIPMENT_DELETED"
)

// ShipmentEvent is the envelope published to the event stream after every
// accepted mutation. Creation and status updates carry the full shipment
// snapshot; deletion carries only the identifier, since the record no longer
// exists.
type ShipmentEvent struct {
	EventType  string
	OccurredAt time.Time

	// Shipment is the post-mutation snapshot; nil for deletion events.
	Shipment *shipment.Shipment

	// ShipmentID identifies the deleted record; empty for events that carry
	// a snapshot.
	ShipmentID string
}

// NewShipmentSnapshotEvent builds an event carrying the full post-mutation
// snapshot of a shipment.
func NewShipmentSnapshotEvent(eventType string, snapshot *shipment.Shipment) ShipmentEvent {
	return ShipmentEvent{
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Shipment:   snapshot,
	}
}

// NewShipmentDeletedEvent builds an event carrying only the identifier of a
// deleted shipment.
func NewShipmentDeletedEvent(shipmentID string) ShipmentEvent {
	return ShipmentEvent{
		EventType:  EventShipmentDeleted,
		OccurredAt: time.Now().UTC(),
		ShipmentID: shipmentID,
	}
}

// PublishError wraps a failed event delivery. Publishing is at-least-once and
// best-effort: the triggering mutation has already committed, so callers log
// the failure instead of propagating it to the request.
type PublishError struct {
	EventType string
	Cause     error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to publish %s event: %s", e.EventType, e.Cause)
}

func (e *PublishError) Unwrap() error {
	return e.Cause
}

// EventPublisher delivers shipment lifecycle events to the event stream.
// Exactly one publish attempt is made per successful mutation, after the
// persistence write is committed, never before. Implementations must respect
// ctx deadlines; a timed-out publish is a failure, not an internal retry loop.
type EventPublisher interface {
	Publish(ctx context.Context, event ShipmentEvent) error
}
