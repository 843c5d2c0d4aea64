package errors

// ErrorResponse is the envelope written for every failed request.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Code       string   `json:"code"` // Business error code, e.g. "USER_NOT_FOUND"
	Message    string   `json:"message"`
	Errors     []string `json:"errors"` // Always present, empty unless the client can act on the details
	Success    bool     `json:"success"`
}

// NewErrorResponse builds the envelope for appErr. Details are exposed only
// for client errors; server-side details stay in the logs.
func NewErrorResponse(appErr AppError) ErrorResponse {
	details := []string{}
	if appErr.HTTPCode() < 500 && appErr.Details() != "" {
		details = append(details, appErr.Details())
	}

	return ErrorResponse{
		StatusCode: appErr.HTTPCode(),
		Code:       appErr.ErrorCode(),
		Message:    appErr.Message(),
		Errors:     details,
		Success:    false,
	}
}
