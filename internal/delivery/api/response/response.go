// Package response writes the JSON envelopes shared by every endpoint.
package response

import (
	"net/http"

	domainerrors "tube/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse is the envelope written for every successful request.
type SuccessResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// Success returns a successful response. A nil data is written as an empty object.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if data == nil {
		data = struct{}{}
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, SuccessResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < http.StatusBadRequest,
	})
}

// Error writes the error envelope for appErr.
func Error(c echo.Context, appErr domainerrors.AppError) error {
	return c.JSON(appErr.HTTPCode(), domainerrors.NewErrorResponse(appErr))
}
