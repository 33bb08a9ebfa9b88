package commands_test

import (
	"testing"
	"time"

	"tracker/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand_ValidInput(t *testing.T) {
	eta := time.Now().UTC().Add(48 * time.Hour)
	cmd, err := commands.NewCreateShipmentCommand("Warehouse A", "Customer B", "2 boxes of books", &eta)
	require.NoError(t, err)
	assert.Equal(t, "Warehouse A", cmd.Origin())
	assert.Equal(t, "Customer B", cmd.Destination())
	assert.Equal(t, "2 boxes of books", cmd.Description())
	require.NotNil(t, cmd.EstimatedDelivery())
	assert.True(t, eta.Equal(*cmd.EstimatedDelivery()))
}

func TestNewCreateShipmentCommand_OptionalFieldsOmitted(t *testing.T) {
	cmd, err := commands.NewCreateShipmentCommand("Warehouse A", "Customer B", "", nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.Description())
	assert.Nil(t, cmd.EstimatedDelivery())
}

func TestNewCreateShipmentCommand_EmptyOrigin(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand("", "Customer B", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOriginIsRequired)
}

func TestNewCreateShipmentCommand_EmptyDestination(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand("Warehouse A", "", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDestinationIsRequired)
}

func TestNewCreateShipmentCommand_AllRequiredMissing(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand("", "", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOriginIsRequired)
	assert.ErrorIs(t, err, commands.ErrDestinationIsRequired)
}

func TestCreateShipmentCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateShipmentCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
}
