package errs_test

import (
	"errors"
	"testing"

	"walt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("driver", "42")

		assert.Equal(t, "driver", err.ParamName)
		assert.Equal(t, "42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("city", "Haifa", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: city, ID is: Haifa (cause: connection reset)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("name")
	assert.Equal(t, "value is invalid: name", err.Error())
	assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())

	withCause := errs.NewValueIsInvalidErrorWithCause("name", errors.New("blank"))
	assert.Equal(t, "value is invalid: name (cause: blank)", withCause.Error())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("distance", -1.5, 0, 20)

		assert.Equal(t, -1.5, err.Value)
		assert.Equal(t, "value is invalid: -1.5 is distance, min value is 0, max value is 20", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("hour", 25, 0, 23, errors.New("bad clock"))
		assert.Equal(t, "value is invalid: 25 is hour, min value is 0, max value is 23 (cause: bad clock)", err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("name", "Tel\nAviv", 0, 10)
		assert.Contains(t, err.Error(), "Tel Aviv")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("city")
	assert.Equal(t, "value is required: city", err.Error())

	withCause := errs.NewValueIsRequiredErrorWithCause("city", errors.New("empty"))
	assert.Equal(t, "value is required: city (cause: empty)", withCause.Error())
}

func TestErrorsIs(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("driver", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("x"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("x", 1, 2, 3), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("x"), errs.ErrValueIsRequired)
}
