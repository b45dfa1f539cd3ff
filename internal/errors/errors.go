package errors

import (
	"errors"
	"fmt"
)

// Error codes for the entry creation pipeline. The CLI and TUI match on these
// to pick the user-facing message.
const (
	CodeMissingTripType = "MISSING_TRIP_TYPE"
	CodeMissingDate     = "MISSING_DATE"
	CodeInvalidDuration = "INVALID_DURATION"
	CodeEmptyExportSet  = "EMPTY_EXPORT_SET"
	CodeStorageRead     = "STORAGE_READ_FAILED"
	CodeStorageWrite    = "STORAGE_WRITE_FAILED"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewMissingTripTypeError signals an empty trip label after trimming custom text
func NewMissingTripTypeError() *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: "trip type is required",
		Code:    CodeMissingTripType,
		Context: make(map[string]interface{}),
	}
}

// NewMissingDateError signals a missing entry date
func NewMissingDateError() *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: "date is required",
		Code:    CodeMissingDate,
		Context: make(map[string]interface{}),
	}
}

// NewInvalidDurationError signals a non-positive duration. The message depends
// on the input mode: manual entry asks for a valid time, timer mode asks the
// user to start the stopwatch first.
func NewInvalidDurationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    CodeInvalidDuration,
		Context: make(map[string]interface{}),
	}
}

// NewEmptyExportSetError signals an export request with no entries to render
func NewEmptyExportSetError() *AppError {
	return &AppError{
		Type:    ErrorTypeEmptyExport,
		Message: "no entries to export",
		Code:    CodeEmptyExportSet,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewStorageReadError creates an error for a failed persistence read
func NewStorageReadError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage read failed: %s", operation),
		Code:    CodeStorageRead,
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewStorageWriteError creates an error for a failed persistence write
func NewStorageWriteError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage write failed: %s", operation),
		Code:    CodeStorageWrite,
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(operation string, timeout interface{}) *AppError {
	return &AppError{
		Type:    ErrorTypeTimeout,
		Message: fmt.Sprintf("operation timed out: %s", operation),
		Code:    "TIMEOUT",
		Context: map[string]interface{}{
			"operation": operation,
			"timeout":   timeout,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// HasCode checks if the error carries the given error code
func HasCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Message
	}
	return err.Error()
}
