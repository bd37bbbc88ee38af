package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is().
var (
	// ErrForbidden indicates the calling identity may not mutate the target
	// resource: it is neither the owner nor an admin. The API layer maps
	// this to HTTP 403 Forbidden. It is only returned once the resource has
	// been found, so a 403 never doubles as an existence oracle beyond what
	// the status split already implies.
	ErrForbidden = errors.New("identity is not allowed to mutate this resource")
)

// ServiceError is a custom error type for facade errors with operation context.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
