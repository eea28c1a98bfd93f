package models

import (
	"errors"
	"fmt"
)

// Error codes surfaced to the transport layer
const (
	CodeConflict   = "CONFLICT"
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

// AppError is a domain error carrying a code the handlers map to an HTTP
// status, plus an optional wrapped cause.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewConflictError reports a duplicate-unique-key write
func NewConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

// NewNotFoundError reports an operation referencing a nonexistent record
func NewNotFoundError(resource string, id any) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewValidationError reports a missing or malformed field
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewInternalError wraps an unexpected failure
func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "internal error", Err: err}
}

// ErrCode extracts the domain error code, or CodeInternal for plain errors
func ErrCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// IsConflict reports whether err is a duplicate-unique-key error
func IsConflict(err error) bool {
	return ErrCode(err) == CodeConflict
}

// IsNotFound reports whether err is a missing-record error
func IsNotFound(err error) bool {
	return ErrCode(err) == CodeNotFound
}
