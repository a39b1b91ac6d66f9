package errs_test

import (
	"errors"
	"testing"

	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 120, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 120, err.Value)
		assert.Equal(t, -90, err.Min)
		assert.Equal(t, 90, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 120 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("address")

	assert.Equal(t, "address", err.ParamName)
	require.NoError(t, err.Cause)
	assert.Equal(t, "value is required: address", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("8e2a", "accept order")

	assert.Equal(t, "8e2a", err.ActorID)
	assert.Equal(t, "accept order", err.Action)
	assert.Equal(t, "forbidden: actor 8e2a is not permitted to accept order", err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("accept", "cancelled")

	assert.Equal(t, "accept", err.Action)
	assert.Equal(t, "cancelled", err.Status)
	assert.Equal(t, "invalid transition: cannot accept an order in status cancelled", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("order", "123")

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, "123", err.ID)
	assert.Equal(t, "conflict: concurrent update of order 123", err.Error())
	assert.Equal(t, errs.ErrConflict, err.Unwrap())
}

func TestUnavailableError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewUnavailableError("order store", cause)

		assert.Equal(t, "order store", err.Op)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "unavailable: order store (cause: connection refused)", err.Error())
		assert.Equal(t, errs.ErrUnavailable, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewUnavailableError("notification bus", nil)
		assert.Equal(t, "unavailable: notification bus", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("lat", 120, -90, 90), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("address"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewForbiddenError("8e2a", "accept"), errs.ErrForbidden)
	require.ErrorIs(t, errs.NewInvalidTransitionError("accept", "cancelled"), errs.ErrInvalidTransition)
	require.ErrorIs(t, errs.NewConflictError("order", "123"), errs.ErrConflict)
	require.ErrorIs(t, errs.NewUnavailableError("store", nil), errs.ErrUnavailable)
}
