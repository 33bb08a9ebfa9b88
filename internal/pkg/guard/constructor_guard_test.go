package guard_test

import (
	"errors"
	"testing"

	"tracker/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuard_CommandUsage exercises the pattern the command layer
// relies on: a guarded command built through its constructor validates, a
// zero-value command does not.
func TestConstructorGuard_CommandUsage(t *testing.T) {
	var errCmdNotConstructed = errors.New("trackShipmentCommand must be created via its constructor")

	type trackShipmentCommand struct {
		trackingNumber string
		guard          guard.ConstructorGuard
	}

	newCommand := func(trackingNumber string) (trackShipmentCommand, error) {
		if trackingNumber == "" {
			return trackShipmentCommand{}, errors.New("tracking number is required")
		}
		return trackShipmentCommand{
			trackingNumber: trackingNumber,
			guard:          guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("constructed_command_validates", func(t *testing.T) {
		cmd, err := newCommand("DT1A2B3C4D")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errCmdNotConstructed))
		assert.Equal(t, "DT1A2B3C4D", cmd.trackingNumber)
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		var cmd trackShipmentCommand

		err := cmd.guard.Validate(errCmdNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errCmdNotConstructed, err)
	})
}
