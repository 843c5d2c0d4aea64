// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strconv"
	"strings"

	domainerrors "tube/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/pkg/errors"
)

// CustomValidator reports failures as domain validation errors naming the
// offending request fields.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that knows the notblank and maxbytes rules and names
// fields by their json or form tag.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}
	validate.RegisterTagNameFunc(fieldName)

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "validate request")
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "notblank", "required":
		return fieldErr.Field() + " is required"
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param() + " characters"
	case "maxbytes":
		return fieldErr.Field() + " must be at most " + fieldErr.Param() + " bytes"
	default:
		return fieldErr.Field() + " is invalid"
	}
}

// maxBytes limits the encoded length of a string, unlike max which counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return field.Name
}
