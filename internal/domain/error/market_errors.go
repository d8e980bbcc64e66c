// Package error defines domain-specific errors for the Farm Tracker application.
package error

import "errors"

// Market price domain errors.
var (
	// ErrMarketPriceNotFound is returned when a market price row is not found.
	ErrMarketPriceNotFound = errors.New("market price not found")

	// ErrInvalidQuantity is returned when a non-numeric or negative quantity
	// is supplied to the price calculator.
	ErrInvalidQuantity = errors.New("quantity must be a non-negative number")

	// ErrInvalidClaimedPrice is returned when a non-numeric or negative price
	// is supplied to the price calculator.
	ErrInvalidClaimedPrice = errors.New("price must be a non-negative number")

	// ErrCropNameRequired is returned when no crop name is given for comparison.
	ErrCropNameRequired = errors.New("crop name is required")
)

// MarketErrorCode defines error codes for market price errors.
// Format: MKT-XXYYYY where XX is category and YYYY is specific error.
type MarketErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidQuantity     MarketErrorCode = "MKT-010001"
	ErrCodeInvalidClaimedPrice MarketErrorCode = "MKT-010002"
	ErrCodeCropNameRequired    MarketErrorCode = "MKT-010003"
	ErrCodeMissingMarketFields MarketErrorCode = "MKT-010004"

	// Lookup errors (02XXXX)
	ErrCodeMarketPriceNotFound MarketErrorCode = "MKT-020001"
)

// MarketError represents a market price error with code and message.
type MarketError struct {
	Code    MarketErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MarketError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MarketError) Unwrap() error {
	return e.Err
}

// NewMarketError creates a new MarketError with the given code and message.
func NewMarketError(code MarketErrorCode, message string, err error) *MarketError {
	return &MarketError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
