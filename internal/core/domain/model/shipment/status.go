package shipment

import (
	"errors"
	"fmt"

	"tracker/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel root of all rejected status transitions.
// Use errors.Is to classify, and errors.As with *InvalidTransitionError to
// recover the offending pair of states.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a status change the transition policy forbids.
// It carries the current and requested status for diagnostics.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an error for a forbidden transition
// from one status to another.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure
// shipments follow the correct tracking workflow.
//
// State transitions:
//
//	Created ──> PickedUp ──> InTransit ──> OutForDelivery ──> Delivered
//	    │           │  ▲         │  ▲           │   ▲  │
//	    │           │  │         │  │           │   │  └──> Returned
//	    └───────────┴──┴────>─ Delayed ─<───────┴───┘
//
// Delayed is reachable from every active state and recovers back into the
// flow. Cancelled is reachable from any non-terminal state. Delivered,
// Returned, and Cancelled are terminal: no outgoing transitions at all.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when a shipment is first registered.
	Created

	// PickedUp indicates the carrier has collected the shipment at its origin.
	PickedUp

	// InTransit indicates the shipment is moving between facilities.
	InTransit

	// OutForDelivery indicates the shipment is on its final delivery leg.
	OutForDelivery

	// Delivered indicates the shipment reached its destination.
	// This is a terminal state.
	Delivered

	// Delayed indicates the shipment is held up; it can re-enter the normal
	// flow at PickedUp, InTransit, or OutForDelivery.
	Delayed

	// Returned indicates the shipment went back to the sender.
	// This is a terminal state.
	Returned

	// Cancelled indicates the shipment was cancelled before completion.
	// This is a terminal state, reachable from any non-terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Created:        "CREATED",
		PickedUp:       "PICKED_UP",
		InTransit:      "IN_TRANSIT",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Delayed:        "DELAYED",
		Returned:       "RETURNED",
		Cancelled:      "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:        "CREATED",
		PickedUp:       "PICKED_UP",
		InTransit:      "IN_TRANSIT",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Delayed:        "DELAYED",
		Returned:       "RETURNED",
		Cancelled:      "CANCELLED",
	}
}

// getDisplayNames returns the human-readable descriptions of each valid status.
func getDisplayNames() map[Status]string {
	//nolint:exhaustive // Unknown has no display name
	return map[Status]string{
		Created:        "Order created",
		PickedUp:       "Picked up from origin",
		InTransit:      "In transit",
		OutForDelivery: "Out for delivery",
		Delivered:      "Delivered",
		Delayed:        "Delayed",
		Returned:       "Returned to sender",
		Cancelled:      "Cancelled",
	}
}

// AllStatuses returns every valid status in progression order.
// Useful for exhaustive iteration in validation and tests.
func AllStatuses() []Status {
	return []Status{Created, PickedUp, InTransit, OutForDelivery, Delivered, Delayed, Returned, Cancelled}
}

// TerminalStatuses returns the statuses with no outgoing transitions.
func TerminalStatuses() []Status {
	return []Status{Delivered, Returned, Cancelled}
}

// StatusFromString parses the wire/persistence representation of a status,
// e.g. "IN_TRANSIT". Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status, e.g. "OUT_FOR_DELIVERY".
// Implements fmt.Stringer and is safe on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// DisplayName returns the human-readable label of the status,
// e.g. "Out for delivery". Invalid statuses yield "Unknown".
func (s Status) DisplayName() string {
	if str, ok := getDisplayNames()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
// Delivered, Returned, and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned || s == Cancelled
}

// CanTransitionTo reports whether the transition policy permits moving
// from this status to next.
//
// The policy, in evaluation order:
//  1. A terminal status admits no transition at all.
//  2. Cancellation is accepted from any non-terminal status.
//  3. Otherwise a fixed adjacency table applies:
//     Created -> PickedUp | Delayed
//     PickedUp -> InTransit | Delayed
//     InTransit -> OutForDelivery | Delayed
//     OutForDelivery -> Delivered | Delayed | Returned
//     Delayed -> PickedUp | InTransit | OutForDelivery
//     everything else is rejected.
//
// The function is pure and total over the Status x Status domain.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}

	if next == Cancelled {
		return true
	}

	switch s {
	case Created:
		return next == PickedUp || next == Delayed
	case PickedUp:
		return next == InTransit || next == Delayed
	case InTransit:
		return next == OutForDelivery || next == Delayed
	case OutForDelivery:
		return next == Delivered || next == Delayed || next == Returned
	case Delayed:
		return next == PickedUp || next == InTransit || next == OutForDelivery
	default:
		return false
	}
}
