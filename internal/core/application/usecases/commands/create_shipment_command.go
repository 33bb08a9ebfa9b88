package commands

import (
	"errors"
	"time"

	"tracker/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrOriginIsRequired      = errors.New("origin is required")
	ErrDestinationIsRequired = errors.New("destination is required")
)

// CreateShipmentCommand represents a request to register a new shipment.
// Encapsulates the origin, destination, optional contents description, and
// optional estimated delivery time. Field length bounds are enforced by the
// domain aggregate; the command only guards required-ness so that malformed
// requests fail before any infrastructure is touched.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand("Warehouse A", "Customer B", "fragile", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, publisher, logger)
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	origin            string
	destination       string
	description       string
	estimatedDelivery *time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates that origin and destination are present. Description and
// estimatedDelivery are optional; a nil estimatedDelivery means the default
// delivery window applies.
func NewCreateShipmentCommand(
	origin string,
	destination string,
	description string,
	estimatedDelivery *time.Time,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		description:       description,
		estimatedDelivery: estimatedDelivery,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrigin(origin),
		cmd.setDestination(destination),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Origin returns where the shipment starts.
func (c CreateShipmentCommand) Origin() string {
	return c.origin
}

// Destination returns where the shipment is headed.
func (c CreateShipmentCommand) Destination() string {
	return c.destination
}

// Description returns the optional contents description.
func (c CreateShipmentCommand) Description() string {
	return c.description
}

// EstimatedDelivery returns the requested delivery estimate, or nil when the
// default window should apply.
func (c CreateShipmentCommand) EstimatedDelivery() *time.Time {
	return c.estimatedDelivery
}

func (c *CreateShipmentCommand) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}

	c.origin = origin
	return nil
}

func (c *CreateShipmentCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}
