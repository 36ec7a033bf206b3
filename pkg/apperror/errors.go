package apperror

import (
	"encoding/json"
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest         = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid username or password"}
	ErrSessionExpired     = &AppError{Code: http.StatusUnauthorized, Message: "Session has expired, please log in again"}
	ErrUpstream           = &AppError{Code: http.StatusBadGateway, Message: "POS service is unavailable, please try again"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// FromUpstream maps an upstream API failure to an AppError. The body may be
// a DRF-style {"detail": "..."} object, a field-error map, or anything else;
// when no structured message can be extracted the human-readable fallback is
// used so a failure is never surfaced as raw JSON.
func FromUpstream(status int, body []byte, fallback string) *AppError {
	msg := upstreamMessage(body)
	if msg == "" {
		msg = fallback
	}
	switch status {
	case http.StatusUnauthorized:
		return ErrSessionExpired
	case http.StatusNotFound:
		return &AppError{Code: http.StatusNotFound, Message: msg}
	case http.StatusBadRequest:
		return &AppError{Code: http.StatusBadRequest, Message: msg, Errors: upstreamFieldErrors(body)}
	case http.StatusForbidden:
		return &AppError{Code: http.StatusForbidden, Message: msg}
	}
	if status >= 500 {
		return ErrUpstream
	}
	return &AppError{Code: status, Message: msg}
}

func upstreamMessage(body []byte) string {
	var detail struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &detail); err == nil {
		if detail.Detail != "" {
			return detail.Detail
		}
		if detail.Error != "" {
			return detail.Error
		}
	}
	return ""
}

func upstreamFieldErrors(body []byte) []FieldError {
	var fields map[string][]string
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil
	}
	var out []FieldError
	for field, msgs := range fields {
		if field == "detail" || len(msgs) == 0 {
			continue
		}
		out = append(out, FieldError{Field: field, Message: msgs[0]})
	}
	return out
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
