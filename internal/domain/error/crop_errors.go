// Package error defines domain-specific errors for the Farm Tracker application.
package error

import "errors"

// Crop domain errors.
var (
	// ErrCropNotFound is returned when a crop is not found in the system.
	ErrCropNotFound = errors.New("crop not found")

	// ErrInvalidSeason is returned when the season is not a known value.
	ErrInvalidSeason = errors.New("season must be: Kharif, Rabi, Zaid, or Annual")

	// ErrInvalidCropStatus is returned when the crop status is not a known value.
	ErrInvalidCropStatus = errors.New("status must be: Planted, Growing, Ready, Harvested, or Sold")

	// ErrHarvestDateRequired is returned when no harvest date is provided.
	ErrHarvestDateRequired = errors.New("harvest date is required")

	// ErrNegativePrice is returned when the price per kg is negative.
	ErrNegativePrice = errors.New("price per kg must not be negative")

	// ErrNegativeQuantity is returned when the quantity is negative.
	ErrNegativeQuantity = errors.New("quantity must not be negative")

	// ErrNegativeInvestment is returned when the investment cost is negative.
	ErrNegativeInvestment = errors.New("investment cost must not be negative")

	// ErrCategoryNotFoundForCrop is returned when the referenced category does not exist.
	ErrCategoryNotFoundForCrop = errors.New("crop category not found")

	// ErrInvalidCropSort is returned when an unknown sort key is given.
	ErrInvalidCropSort = errors.New("sort must be: harvest_date, value, or profit")
)

// CropErrorCode defines error codes for crop errors.
// Format: CRP-XXYYYY where XX is category and YYYY is specific error.
type CropErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSeason        CropErrorCode = "CRP-010001"
	ErrCodeInvalidCropStatus    CropErrorCode = "CRP-010002"
	ErrCodeHarvestDateRequired  CropErrorCode = "CRP-010003"
	ErrCodeNegativePrice        CropErrorCode = "CRP-010004"
	ErrCodeNegativeQuantity     CropErrorCode = "CRP-010005"
	ErrCodeNegativeInvestment   CropErrorCode = "CRP-010006"
	ErrCodeInvalidCropSort      CropErrorCode = "CRP-010007"
	ErrCodeMissingCropFields    CropErrorCode = "CRP-010008"

	// Lookup errors (02XXXX)
	ErrCodeCropNotFound            CropErrorCode = "CRP-020001"
	ErrCodeCropCategoryNotFound    CropErrorCode = "CRP-020002"
	ErrCodeCropFarmerNotFound      CropErrorCode = "CRP-020003"
)

// CropError represents a crop error with code and message.
type CropError struct {
	Code    CropErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CropError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CropError) Unwrap() error {
	return e.Err
}

// NewCropError creates a new CropError with the given code and message.
func NewCropError(code CropErrorCode, message string, err error) *CropError {
	return &CropError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
