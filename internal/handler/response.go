package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Machine readable error codes carried in the error envelope.
const (
	CodeValidation    = "validation_error"
	CodeInvalidInput  = "invalid_payload"
	CodeRateLimited   = "rate_limited"
	CodeNotFound      = "not_found"
	CodeInternal      = "internal_error"
	CodeHTTP          = "http_error"
	internalErrorText = "Internal server error"
)

// APIResponse describes the standard envelope returned by the API.
type APIResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// APIError is the body of a failed response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Success sends a successful response using the shared envelope format.
func Success(c echo.Context, status int, message string, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	payload := APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
	return c.JSON(status, payload)
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, code, message string) error {
	return writeError(c, status, APIError{Code: code, Message: message})
}

func writeError(c echo.Context, status int, apiErr APIError) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	payload := APIResponse{
		Success: false,
		Error:   &apiErr,
	}
	return c.JSON(status, payload)
}
