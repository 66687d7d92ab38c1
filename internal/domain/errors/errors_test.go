package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrInvalidCredentials.WrapMessage("authentication failed")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestIsKind(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("title is required")
	wrapped := errors.Wrap(detailed, "publish")

	assert.True(t, IsKind(wrapped, ErrValidationFailed))
	assert.False(t, errors.Is(wrapped, ErrValidationFailed))
	assert.False(t, IsKind(wrapped, ErrConflict))
	assert.False(t, IsKind(errors.New("plain"), ErrValidationFailed))
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert video")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "insert video", err.Details())
}
