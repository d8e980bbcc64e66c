// Package error defines domain-specific errors for the Farm Tracker application.
package error

import "errors"

// Farmer domain errors.
var (
	// ErrFarmerNotFound is returned when a farmer is not found in the system.
	ErrFarmerNotFound = errors.New("farmer not found")

	// ErrInvalidExperienceYears is returned when experience years is negative.
	ErrInvalidExperienceYears = errors.New("experience years must not be negative")

	// ErrInvalidLandArea is returned when the land area is negative.
	ErrInvalidLandArea = errors.New("land area must not be negative")

	// ErrInvalidExperienceBucket is returned when an unknown experience bucket filter is given.
	ErrInvalidExperienceBucket = errors.New("experience bucket must be: new, experienced, or expert")

	// ErrFarmerNameRequired is returned when the farmer name is empty.
	ErrFarmerNameRequired = errors.New("farmer name is required")
)

// FarmerErrorCode defines error codes for farmer errors.
// Format: FRM-XXYYYY where XX is category and YYYY is specific error.
type FarmerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeFarmerNameRequired       FarmerErrorCode = "FRM-010001"
	ErrCodeInvalidExperienceYears   FarmerErrorCode = "FRM-010002"
	ErrCodeInvalidLandArea          FarmerErrorCode = "FRM-010003"
	ErrCodeInvalidExperienceBucket  FarmerErrorCode = "FRM-010004"
	ErrCodeMissingFarmerFields      FarmerErrorCode = "FRM-010005"

	// Lookup errors (02XXXX)
	ErrCodeFarmerNotFound FarmerErrorCode = "FRM-020001"
)

// FarmerError represents a farmer error with code and message.
type FarmerError struct {
	Code    FarmerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FarmerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FarmerError) Unwrap() error {
	return e.Err
}

// NewFarmerError creates a new FarmerError with the given code and message.
func NewFarmerError(code FarmerErrorCode, message string, err error) *FarmerError {
	return &FarmerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
