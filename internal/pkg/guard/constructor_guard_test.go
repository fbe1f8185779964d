package guard_test

import (
	"errors"
	"testing"

	"walt/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	notConstructed := errors.New("not constructed")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(notConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, notConstructed, g.Validate(notConstructed))
	})

	t.Run("zero_value_guard_falls_back_to_default", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

func TestConstructorGuard_EmbeddedInStruct(t *testing.T) {
	type command struct {
		name  string
		guard guard.ConstructorGuard
	}
	errCommand := errors.New("command must be created via newCommand")

	newCommand := func(name string) command {
		return command{name: name, guard: guard.NewConstructorGuard()}
	}

	require.NoError(t, newCommand("Tel-Aviv").guard.Validate(errCommand))
	require.ErrorIs(t, command{name: "Tel-Aviv"}.guard.Validate(errCommand), errCommand)
}

func TestConstructorGuard_CopiedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	cp := g

	require.NoError(t, cp.Validate(nil))
}
