package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"punchclock/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrInvalidInput.WithDetails("timezone is required")

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrNotClockedIn))
	assert.Equal(t, "timezone is required", err.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrAlreadyClockedIn.WrapMessage("clock in")

	assert.True(t, errors.Is(err, ErrAlreadyClockedIn))
	appErr, ok := AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, "ALREADY_CLOCKED_IN", appErr.ErrorCode())
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := errors.Wrap(NewDatabaseExecuteError(cause, "insert entry"), "clock in")

	assert.True(t, HasCode(err, "DATABASE_EXECUTE_FAILED"))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestAsAppError_PlainError(t *testing.T) {
	_, ok := AsAppError(stderrors.New("boom"))
	assert.False(t, ok)
	assert.False(t, HasCode(nil, "INTERNAL_ERROR"))
}
