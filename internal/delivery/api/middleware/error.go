package middleware

import (
	"log/slog"
	"net/http"

	"tube/internal/delivery/api/response"
	deliverycontext "tube/internal/delivery/context"
	domainerrors "tube/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}
		_ = response.Error(c, appErr)

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		_ = response.Error(c, domainerrors.NewBaseError(httpErr.Code, "HTTP_ERROR", message, ""))

		return
	}

	// Default to internal error, log the error but return a generic message (do not expose internal details)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, domainerrors.ErrInternalError)
}
