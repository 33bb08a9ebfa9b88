package kernel_test

import (
	"testing"

	"tracker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleUUID = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	t.Run("produces a valid identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NoError(t, id.Validate())
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})

	t.Run("successive calls differ", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(sampleUUID)

		require.NoError(t, err)
		assert.Equal(t, sampleUUID, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("accepts alternate library formats", func(t *testing.T) {
		for _, input := range []string{
			"{550e8400-e29b-41d4-a716-446655440000}",
			"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
			"550e8400e29b41d4a716446655440000",
		} {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err, "input: %s", input)
			assert.Equal(t, sampleUUID, id.String())
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{
			"",
			"not-a-uuid",
			"550e8400-e29b-41d4-a716",
			"550e8400-e29b-41d4-a716-446655440000-extra",
			"zzze8400-e29b-41d4-a716-446655440000",
		} {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, "input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("rehydrates from 16 bytes", func(t *testing.T) {
		source := uuid.MustParse(sampleUUID)
		id, err := kernel.UUIDFromBytes(source[:])

		require.NoError(t, err)
		assert.Equal(t, sampleUUID, id.String())
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e, 0x84})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("rejects the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("round-trips through the library type", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.Equal(t, id.String(), id.Bytes().String())
	})

	t.Run("returned value is a copy", func(t *testing.T) {
		id := kernel.NewUUID()
		before := id.String()

		b := id.Bytes()
		for i := range b {
			b[i] = 0xFF
		}

		assert.Equal(t, before, id.String())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("same value compares equal", func(t *testing.T) {
		id1, err := kernel.UUIDFromString(sampleUUID)
		require.NoError(t, err)
		id2, err := kernel.UUIDFromString(sampleUUID)
		require.NoError(t, err)

		assert.True(t, id1.IsEqual(id2))
		assert.True(t, id2.IsEqual(id1))
	})

	t.Run("different values compare unequal", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})

	t.Run("zero values compare equal to each other only", func(t *testing.T) {
		var id1, id2 kernel.UUID

		assert.True(t, id1.IsEqual(id2))
		assert.False(t, id1.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("constructed identifier passes", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("zero value fails", func(t *testing.T) {
		var id kernel.UUID

		assert.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("parsed nil UUID fails", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.NoError(t, err)
		assert.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})
}
