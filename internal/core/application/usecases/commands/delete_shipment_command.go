package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrDeleteShipmentCommandIsNotConstructed = errors.New(
		"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
	)
)

// DeleteShipmentCommand represents a request to permanently remove a shipment.
// Deletion is hard: there is no soft-delete or tombstone.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a command to delete a shipment.
// Validates that the shipment id is a proper UUID.
func NewDeleteShipmentCommand(shipmentID kernel.UUID) (DeleteShipmentCommand, error) {
	cmd := DeleteShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteShipmentCommandIsNotConstructed if validation fails.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to delete.
func (c DeleteShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *DeleteShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
