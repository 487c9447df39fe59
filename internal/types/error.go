package types

import (
	"fmt"
	"net/http"
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewValidationError reports missing or malformed input (400).
func NewValidationError(message, errType string) *CustomError {
	return &CustomError{Code: http.StatusBadRequest, Message: message, Type: errType}
}

// NewAuthError reports a missing/invalid token or bad credentials (401).
func NewAuthError(message, errType string) *CustomError {
	return &CustomError{Code: http.StatusUnauthorized, Message: message, Type: errType}
}

// NewForbiddenError reports an authenticated caller lacking permission (403).
func NewForbiddenError(message, errType string) *CustomError {
	return &CustomError{Code: http.StatusForbidden, Message: message, Type: errType}
}

// NewNotFoundError reports an absent entity, or one the caller may not see (404).
func NewNotFoundError(message, errType string) *CustomError {
	return &CustomError{Code: http.StatusNotFound, Message: message, Type: errType}
}

// NewConflictError reports a duplicate request or an invalid state transition.
// Reported as 400 to match the documented API surface.
func NewConflictError(message, errType string) *CustomError {
	return &CustomError{Code: http.StatusBadRequest, Message: message, Type: errType}
}
