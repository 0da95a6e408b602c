package cell

import (
	"errors"
	"fmt"
)

// Error type constants for classification and matching. Core operations
// never return errors; these classify the sentinel outcomes for callers that
// want to report them.
const (
	// ErrorTypeAll acts as a wildcard that matches any classified error
	ErrorTypeAll = "all"

	// ErrorTypeTypeMismatch is a cast or copy against the wrong type
	ErrorTypeTypeMismatch = "type_mismatch"

	// ErrorTypeIncomparable is a comparison that yielded NaN
	ErrorTypeIncomparable = "incomparable"

	// ErrorTypeUnsupported is an operation the payload does not implement
	ErrorTypeUnsupported = "unsupported_operation"

	// ErrorTypeEmptyAccess is a peek or pop on an empty sequence
	ErrorTypeEmptyAccess = "empty_access"

	// ErrorTypeDecode is a failure turning external data into values
	ErrorTypeDecode = "decode"

	// ErrorTypeScript is a script that failed to compile or evaluate
	ErrorTypeScript = "script"
)

// Error represents a classified error.
// It supports Go's error wrapping patterns with Unwrap() method
type Error struct {
	Type    string `json:"type"`
	Cause   string `json:"cause"`
	Wrapped error  `json:"-"` // Original error being wrapped
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Cause)
}

// Unwrap implements the error unwrapping interface for Go's errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// NewError creates a new Error with the specified type and cause.
func NewError(errorType, cause string) *Error {
	return &Error{
		Type:  errorType,
		Cause: cause,
	}
}

// WrapError classifies err under errorType, keeping err for errors.Is.
func WrapError(errorType string, err error) *Error {
	return &Error{
		Type:    errorType,
		Cause:   err.Error(),
		Wrapped: err,
	}
}

// MatchesErrorType checks if an error matches a specified error type pattern
func MatchesErrorType(err error, errorType string) bool {
	var cellErr *Error
	if !errors.As(err, &cellErr) {
		return false
	}
	if errorType == ErrorTypeAll {
		return true
	}
	return cellErr.Type == errorType
}
