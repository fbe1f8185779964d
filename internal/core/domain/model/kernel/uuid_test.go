package kernel_test

import (
	"bytes"
	"testing"

	"walt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.NotEqual(t, uuid.Nil.String(), id.String())
		assert.Equal(t, uuid.Version(7), id.Bytes().Version())
	})

	t.Run("should sort by creation order", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		third := kernel.NewUUID()

		a, b, c := first.Bytes(), second.Bytes(), third.Bytes()
		assert.Negative(t, bytes.Compare(a[:], b[:]))
		assert.Negative(t, bytes.Compare(b[:], c[:]))
		assert.False(t, first.IsEqual(second))
	})
}

func TestUUIDFromString(t *testing.T) {
	valid := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should parse the canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(valid)

		require.NoError(t, err)
		assert.Equal(t, valid, id.String())
	})

	t.Run("should accept braces and urn prefix", func(t *testing.T) {
		braced, err := kernel.UUIDFromString("{" + valid + "}")
		require.NoError(t, err)
		urn, err := kernel.UUIDFromString("urn:uuid:" + valid)
		require.NoError(t, err)

		assert.True(t, braced.IsEqual(urn))
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round trip", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, id.IsEqual(restored))
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject short input", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.Error(t, err)
	})
}

func TestUUID_ZeroValue(t *testing.T) {
	var id kernel.UUID

	require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
}
