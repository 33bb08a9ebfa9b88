package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/guard"
)

var (
	ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
		"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
	)
)

// UpdateShipmentStatusCommand represents a request to move a shipment to a new
// status. Whether the transition is legal is decided by the aggregate against
// the persisted current status, not here; the command only guarantees that the
// id and the target status are well-formed.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	newStatus  shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to change a shipment's status.
// Validates that the shipment id is a proper UUID and the target status is a
// member of the closed status enumeration.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.UUID,
	newStatus shipment.Status,
) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentStatusCommandIsNotConstructed if validation fails.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to update.
func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// NewStatus returns the requested target status.
func (c UpdateShipmentStatusCommand) NewStatus() shipment.Status {
	return c.newStatus
}

func (c *UpdateShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentStatusCommand) setNewStatus(newStatus shipment.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
