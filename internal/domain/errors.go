package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code so callers can use errors.Is().
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrInvalidScope - the filter token is not one of vandaag/week/maand
	ErrInvalidScope = &DomainError{
		Code:    "INVALID_SCOPE",
		Message: "unrecognized reporting scope",
	}

	// ErrInvalidArgument - out-of-range hours or malformed date parameters
	ErrInvalidArgument = &DomainError{
		Code:    "INVALID_ARGUMENT",
		Message: "invalid argument",
	}

	// ErrStoreUnavailable - persistence engine unreachable or timed out
	ErrStoreUnavailable = &DomainError{
		Code:    "STORE_UNAVAILABLE",
		Message: "store unreachable or timed out",
	}

	// ErrConflictRetryExhausted - idempotent write lost the race beyond the retry budget
	ErrConflictRetryExhausted = &DomainError{
		Code:    "CONFLICT_RETRY_EXHAUSTED",
		Message: "write retries exhausted",
	}

	// ErrNotFound - resource not found
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

// NewInvalidArgumentError creates an INVALID_ARGUMENT error with detail text
func NewInvalidArgumentError(detail string) *DomainError {
	return &DomainError{
		Code:    "INVALID_ARGUMENT",
		Message: detail,
	}
}

// NewNotFoundError creates a NOT_FOUND error with additional context
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}
