package models

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrBadRequest          = errors.New("request rejected by service")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrSubmitInProgress    = errors.New("order submission already in progress")
	ErrFormClosed          = errors.New("order form is not open")
	ErrInvalidDraft        = errors.New("invalid order draft")
	ErrUnknownField        = errors.New("unknown form field")
	ErrUnknownTab          = errors.New("unknown dashboard tab")
	ErrInvalidSessionToken = errors.New("invalid session token")
)

// APIError is a non-success response of the order or payment service
type APIError struct {
	StatusCode int
	// Message is the human-readable message of the error body, may be empty
	Message string
}

// NewAPIError creates new APIError
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("service responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("service responded with status %d: %s", e.StatusCode, e.Message)
}

// Is matches status classes against the package sentinels
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrBadRequest:
		return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
	case ErrServiceUnavailable:
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}

// UserMessage returns the message the service attached to err,
// or fallback when there is none
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
