package shipment

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through the NewShipment or RestoreShipment factory methods. This ensures all
	// shipments are properly validated.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")
)

const (
	// locationMinLen and locationMaxLen bound the origin and destination fields.
	locationMinLen = 3
	locationMaxLen = 100

	// descriptionMaxLen bounds the optional description field.
	descriptionMaxLen = 500

	// defaultDeliveryWindow is added to the creation time when no estimated
	// delivery is supplied.
	defaultDeliveryWindow = 72 * time.Hour
)

// Shipment represents a tracked shipment in the system. It is the aggregate root
// that manages the shipment lifecycle from creation through status progression
// to a terminal state.
//
// Shipment follows these invariants:
//   - Must have a valid unique identifier and tracking number
//   - Origin and destination are non-empty, 3-100 characters, immutable after creation
//   - Description is optional and at most 500 characters
//   - Status transitions only along edges permitted by the transition policy
//   - Once the status is terminal, no further transition is possible
//   - Can only be created through NewShipment or RestoreShipment
//
// The Shipment struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Shipment struct {
	// id is the store-assigned unique identifier, immutable after creation
	id kernel.UUID

	// trackingNumber is the externally visible unique identifier, immutable
	trackingNumber TrackingNumber

	// origin is where the shipment starts, immutable
	origin string

	// destination is where the shipment is headed, immutable
	destination string

	// description is optional free text about the contents
	description string

	// status is the current state in the shipment lifecycle
	status Status

	// estimatedDelivery is when the shipment is expected to arrive
	estimatedDelivery time.Time

	// createdAt is set once at creation, never mutated
	createdAt time.Time

	// updatedAt is refreshed on every mutation
	updatedAt time.Time

	// isConstructed ensures the shipment was created via a factory method
	isConstructed bool
}

// NewShipment creates a new Shipment with validation. This is the only way to
// create a shipment for a brand-new tracking request, ensuring all business
// invariants are maintained.
//
// The shipment starts in Created status. When estimatedDelivery is nil it
// defaults to the creation time plus three days.
//
// Returns a validation error if origin or destination is missing or outside
// its length bounds, or if the description exceeds its limit. Validation
// happens before the caller gets a chance to persist anything.
func NewShipment(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	origin string,
	destination string,
	description string,
	estimatedDelivery *time.Time,
) (*Shipment, error) {
	now := time.Now().UTC()

	s := &Shipment{
		status:        Created,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setDescription(description),
	); err != nil {
		return nil, err
	}

	if estimatedDelivery != nil {
		s.estimatedDelivery = estimatedDelivery.UTC()
	} else {
		s.estimatedDelivery = now.Add(defaultDeliveryWindow)
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persisted state.
// It applies the same field validation as NewShipment but accepts the stored
// status and timestamps as-is, since they were validated when first written.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	origin string,
	destination string,
	description string,
	status Status,
	estimatedDelivery time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		estimatedDelivery: estimatedDelivery,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setDescription(description),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingNumber returns the externally visible tracking identifier.
func (s *Shipment) TrackingNumber() TrackingNumber {
	return s.trackingNumber
}

// Origin returns where the shipment starts.
func (s *Shipment) Origin() string {
	return s.origin
}

// Destination returns where the shipment is headed.
func (s *Shipment) Destination() string {
	return s.destination
}

// Description returns the optional contents description.
func (s *Shipment) Description() string {
	return s.description
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// EstimatedDelivery returns when the shipment is expected to arrive.
func (s *Shipment) EstimatedDelivery() time.Time {
	return s.estimatedDelivery
}

// CreatedAt returns when the shipment was registered.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns when the shipment was last mutated.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// ChangeStatus transitions the shipment to the requested status.
//
// The transition policy is consulted first: a terminal current status rejects
// everything, cancellation is accepted from any non-terminal status, and all
// other moves must be edges of the fixed adjacency table. On success the
// status and updatedAt are mutated; on failure the shipment is untouched.
//
// Returns:
//   - nil on a permitted transition
//   - *InvalidTransitionError carrying the current and requested status otherwise
func (s *Shipment) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if !s.status.CanTransitionTo(next) {
		return NewInvalidTransitionError(s.status, next)
	}

	s.status = next
	s.updatedAt = time.Now().UTC()
	return nil
}

// IsOverdue reports whether the shipment missed its estimated delivery as of
// now. Shipments in a terminal state are never overdue, regardless of their
// estimated delivery.
func (s *Shipment) IsOverdue(now time.Time) bool {
	return !s.status.IsTerminal() && s.estimatedDelivery.Before(now)
}

// setID validates and sets the shipment's unique identifier.
// This is a private method used only during construction.
func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// setTrackingNumber validates and sets the external tracking identifier.
// This is a private method used only during construction.
func (s *Shipment) setTrackingNumber(trackingNumber TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	s.trackingNumber = trackingNumber
	return nil
}

// setOrigin validates and sets the shipment's origin.
// This is a private method used only during construction.
func (s *Shipment) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if len(origin) < locationMinLen || len(origin) > locationMaxLen {
		return errs.NewValueIsOutOfRangeError("origin length", len(origin), locationMinLen, locationMaxLen)
	}
	s.origin = origin
	return nil
}

// setDestination validates and sets the shipment's destination.
// This is a private method used only during construction.
func (s *Shipment) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	if len(destination) < locationMinLen || len(destination) > locationMaxLen {
		return errs.NewValueIsOutOfRangeError("destination length", len(destination), locationMinLen, locationMaxLen)
	}
	s.destination = destination
	return nil
}

// setDescription validates and sets the optional description.
// This is a private method used only during construction.
func (s *Shipment) setDescription(description string) error {
	if len(description) > descriptionMaxLen {
		return errs.NewValueIsOutOfRangeError("description length", len(description), 0, descriptionMaxLen)
	}
	s.description = description
	return nil
}

// setStatus validates and sets the stored status during restoration.
// This is a private method used only during reconstruction from persistence.
func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
