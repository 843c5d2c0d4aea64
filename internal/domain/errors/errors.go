package errors

import (
	"net/http"

	"tube/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Input errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"All fields are required",
		"",
	)

	ErrAvatarRequired = NewBaseError(
		http.StatusBadRequest,
		"AVATAR_REQUIRED",
		"Avatar file is required",
		"",
	)

	ErrCoverImageRequired = NewBaseError(
		http.StatusBadRequest,
		"COVER_IMAGE_REQUIRED",
		"Cover image file is missing",
		"",
	)

	ErrAvatarUploadFailed = NewBaseError(
		http.StatusBadRequest,
		"AVATAR_UPLOAD_FAILED",
		"Error while uploading avatar",
		"",
	)

	ErrCoverImageUploadFailed = NewBaseError(
		http.StatusBadRequest,
		"COVER_IMAGE_UPLOAD_FAILED",
		"Error while uploading cover image",
		"",
	)

	ErrInvalidOldPassword = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OLD_PASSWORD",
		"Invalid old password",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"User with email or username already exists",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"Email is already used by another account",
		"",
	)

	ErrMediaNotFound = NewBaseError(
		http.StatusNotFound,
		"MEDIA_NOT_FOUND",
		"Media does not exist",
		"",
	)

	ErrChannelNotFound = NewBaseError(
		http.StatusNotFound,
		"CHANNEL_NOT_FOUND",
		"Channel does not exist",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized request",
		"",
	)

	ErrAccessTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"ACCESS_TOKEN_INVALID",
		"Invalid access token",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid user credentials",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Refresh token is expired or used",
		"",
	)

	ErrTokenGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_GENERATION_FAILED",
		"Token generation failed",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// General errors
	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrServiceUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SERVICE_UNAVAILABLE",
		"Service unavailable",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
