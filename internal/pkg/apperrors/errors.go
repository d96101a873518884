package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// ErrMalformedEntity is returned when an enumerated field has no lookup row
	ErrMalformedEntity = errors.New("malformed entity")

	// ErrStoreUnavailable wraps every connectivity or statement failure
	ErrStoreUnavailable = errors.New("store unavailable")

	// Validation errors
	ErrValidationFailed    = errors.New("validation failed")
	ErrInvalidLookupColumn = errors.New("lookup column not allowed")
)

// Student errors
var (
	ErrStudentNotFound        = NewResourceNotFoundError("student not found")
	ErrStudentIDAlreadyExists = NewConflictError("student ID already exists")
	ErrCedulaAlreadyExists    = NewConflictError("cedula already exists")
	ErrUUIDAlreadyExists      = NewConflictError("uuid already exists")
	ErrInvalidStudentStatus   = NewMalformedEntityError("unknown student status")
)

// Employee errors
var (
	ErrEmployeeNotFound    = NewResourceNotFoundError("employee not found")
	ErrInvalidEmployeeRole = NewMalformedEntityError("unknown employee role")
)

// Phone number errors
var (
	ErrInvalidPhoneType = NewMalformedEntityError("unknown phone type")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewMalformedEntityError creates a new custom error for an unresolvable enumerated value
func NewMalformedEntityError(message string) error {
	return &CustomError{
		Err:     ErrMalformedEntity,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
