package kernel

import (
	"fmt"

	"tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
// Identifiers must come from NewUUID, UUIDFromString, or UUIDFromBytes.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object used for entities and aggregates.
// It wraps github.com/google/uuid so the domain never depends on the
// library type directly. The zero value is invalid and fails Validate;
// construct through one of the factory functions.
//
// UUID is immutable and safe for concurrent use.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random version 4 UUID. This is how fresh
// aggregate identifiers are minted.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its textual form, accepting the
// standard formats the underlying library accepts (plain, braced, urn).
// Used when an identifier arrives from a route parameter or an external
// system.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from a 16-byte slice, typically when
// rehydrating an identifier stored as binary. The result is validated so
// a nil UUID read back from storage is rejected here rather than deeper
// in the domain.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"
// form. A zero value renders as the all-zero UUID.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID, for persistence mapping where
// the driver wants the library type. Slice it ([:]) for raw bytes.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs carry the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value and nil
// for anything produced by a factory function.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
