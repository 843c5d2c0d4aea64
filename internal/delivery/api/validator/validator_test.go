package validator

import (
	"strings"
	"testing"

	domainerrors "tube/internal/domain/errors"
	"tube/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	FullName string `json:"fullname" validate:"notblank"`
	Password string `form:"password" validate:"notblank,max=8"`
}

func TestCustomValidator(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&sampleInput{FullName: "Alice", Password: "secret"}))
	})

	t.Run("whitespace is blank", func(t *testing.T) {
		err := v.Validate(&sampleInput{FullName: "   ", Password: "secret"})

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		assert.Equal(t, "fullname is required", appErr.Details())
	})

	t.Run("multibyte password counted in bytes", func(t *testing.T) {
		input := &usecase.RegisterInput{
			FullName: "Alice",
			Username: "alice",
			Email:    "alice@example.com",
			Password: strings.Repeat("é", 72),
		}

		err := v.Validate(input)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "password must be at most 72 bytes", appErr.Details())

		input.Password = strings.Repeat("é", 36)
		assert.NoError(t, v.Validate(input))
	})

	t.Run("reports every field", func(t *testing.T) {
		err := v.Validate(&sampleInput{Password: strings.Repeat("x", 9)})

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "fullname is required; password must be at most 8 characters", appErr.Details())
	})
}
