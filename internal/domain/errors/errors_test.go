package errors

import (
	"net/http"
	"testing"

	"tube/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesCopiesWithDetails(t *testing.T) {
	err := ErrValidationFailed.WithDetails("fullname is required")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrUserAlreadyExists))
	assert.Equal(t, "All fields are required: fullname is required", err.Error())
}

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrRefreshTokenInvalid.WrapMessage("stored token mismatch")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.True(t, errors.Is(err, ErrRefreshTokenInvalid))
}

func TestNewErrorResponse(t *testing.T) {
	t.Run("client error exposes details", func(t *testing.T) {
		resp := NewErrorResponse(ErrValidationFailed.WithDetails("email: email"))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_FAILED", resp.Code)
		assert.Equal(t, []string{"email: email"}, resp.Errors)
		assert.False(t, resp.Success)
	})

	t.Run("server error hides details", func(t *testing.T) {
		resp := NewErrorResponse(NewDatabaseExecuteError(errors.New("socket closed"), "find user"))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Empty(t, resp.Errors)
		assert.NotNil(t, resp.Errors)
	})
}
