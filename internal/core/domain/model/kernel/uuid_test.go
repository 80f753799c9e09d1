package kernel_test

import (
	"testing"

	"sales/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownOrderID = "7f1bb66a-0a54-4a0c-9f3d-2e8a41c05d17"

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid id", func(t *testing.T) {
		orderID := kernel.NewUUID()

		require.NoError(t, orderID.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", orderID.String())
	})

	t.Run("should never collide for distinct aggregates", func(t *testing.T) {
		orderID := kernel.NewUUID()
		customerID := kernel.NewUUID()

		assert.False(t, orderID.IsEqual(customerID))
		assert.NotEqual(t, orderID.String(), customerID.String())
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should accept canonical and alternate encodings", func(t *testing.T) {
		for _, input := range []string{
			knownOrderID,
			"{" + knownOrderID + "}",
			"urn:uuid:" + knownOrderID,
			"7f1bb66a0a544a0c9f3d2e8a41c05d17",
		} {
			id, err := kernel.UUIDFromString(input)
			require.NoError(t, err, input)
			assert.Equal(t, knownOrderID, id.String())
			require.NoError(t, id.Validate())
		}
	})

	t.Run("should reject malformed ids", func(t *testing.T) {
		for _, input := range []string{
			"",
			"order-42",
			"7f1bb66a-0a54-4a0c-9f3d",
			knownOrderID + "-trailing",
			"zz1bb66a-0a54-4a0c-9f3d-2e8a41c05d17",
		} {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round-trip through raw bytes", func(t *testing.T) {
		original, err := kernel.UUIDFromString(knownOrderID)
		require.NoError(t, err)

		raw := original.Bytes()
		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
	})

	t.Run("should reject truncated bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x7f, 0x1b, 0xb6})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the nil uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_String(t *testing.T) {
	orderID := kernel.NewUUID()

	assert.Regexp(t,
		`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`,
		orderID.String())
	assert.Equal(t, orderID.String(), orderID.String())
}

func TestUUID_Bytes(t *testing.T) {
	orderID := kernel.NewUUID()
	raw := orderID.Bytes()

	assert.IsType(t, uuid.UUID{}, raw)
	assert.Equal(t, orderID.String(), raw.String())

	// Bytes hands out a copy; scribbling over it leaves the id intact.
	for i := range raw {
		raw[i] = 0xFF
	}
	require.NoError(t, orderID.Validate())
	assert.NotEqual(t, raw.String(), orderID.String())
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("same id parsed twice compares equal", func(t *testing.T) {
		a, _ := kernel.UUIDFromString(knownOrderID)
		b, _ := kernel.UUIDFromString(knownOrderID)

		assert.True(t, a.IsEqual(b))
		assert.True(t, b.IsEqual(a))
	})

	t.Run("zero values compare equal only to each other", func(t *testing.T) {
		var a, b kernel.UUID
		orderID := kernel.NewUUID()

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(orderID))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("constructed id is valid", func(t *testing.T) {
		require.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var customerID kernel.UUID

		err := customerID.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})

	t.Run("explicit nil uuid fails validation", func(t *testing.T) {
		nilID, _ := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, nilID.Validate())
	})
}
