// Package error defines domain-specific errors for the Farm Tracker application.
package error

import "errors"

// Category advisor domain errors.
var (
	// ErrSuggestionNotFound is returned when a category suggestion is not found.
	ErrSuggestionNotFound = errors.New("category suggestion not found")

	// ErrCropAlreadyCategorized is returned when asking for a suggestion on a
	// crop that already has a category.
	ErrCropAlreadyCategorized = errors.New("crop already has a category")

	// ErrSuggestionNotPending is returned when approving or rejecting a
	// suggestion that was already resolved.
	ErrSuggestionNotPending = errors.New("suggestion is not pending")

	// ErrAdvisorUnavailable is returned when the AI service cannot be reached.
	ErrAdvisorUnavailable = errors.New("category advisor unavailable")
)

// AdvisorErrorCode defines error codes for category advisor errors.
// Format: ADV-XXYYYY where XX is category and YYYY is specific error.
type AdvisorErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCropAlreadyCategorized AdvisorErrorCode = "ADV-010001"
	ErrCodeSuggestionNotPending   AdvisorErrorCode = "ADV-010002"

	// Lookup errors (02XXXX)
	ErrCodeSuggestionNotFound AdvisorErrorCode = "ADV-020001"

	// Internal errors (99XXXX)
	ErrCodeAdvisorUnavailable AdvisorErrorCode = "ADV-990001"
)

// AdvisorError represents a category advisor error with code and message.
type AdvisorError struct {
	Code    AdvisorErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AdvisorError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AdvisorError) Unwrap() error {
	return e.Err
}

// NewAdvisorError creates a new AdvisorError with the given code and message.
func NewAdvisorError(code AdvisorErrorCode, message string, err error) *AdvisorError {
	return &AdvisorError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
