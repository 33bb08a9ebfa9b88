package commands_test

import (
	"testing"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateShipmentStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateShipmentStatusCommand(id, shipment.PickedUp)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	assert.Equal(t, shipment.PickedUp, cmd.NewStatus())
}

func TestNewUpdateShipmentStatusCommand_InvalidShipmentID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewUpdateShipmentStatusCommand(invalidID, shipment.PickedUp)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateShipmentStatusCommand_InvalidStatus(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewUpdateShipmentStatusCommand(id, shipment.Unknown)
	require.Error(t, err)
}

func TestUpdateShipmentStatusCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.UpdateShipmentStatusCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateShipmentStatusCommandIsNotConstructed)
}
