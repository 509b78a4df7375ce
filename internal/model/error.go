package model

import "strings"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeInvalidID       = "INVALID_ID"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidID       = NewDomainError(ErrCodeInvalidID, "Invalid id")
)

// ValidationError carries the full ordered list of field-level problems
// found in a request body, so a caller can fix them all in one round trip.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Errors, "; ")
}
