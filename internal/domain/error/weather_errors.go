// Package error defines domain-specific errors for the Farm Tracker application.
package error

import "errors"

// Weather domain errors.
var (
	// ErrLocationRequired is returned when no location is given for an observation.
	ErrLocationRequired = errors.New("location is required")

	// ErrInvalidHumidity is returned when humidity falls outside 0-100 percent.
	ErrInvalidHumidity = errors.New("humidity must be between 0 and 100")

	// ErrInvalidRainfall is returned when rainfall is negative.
	ErrInvalidRainfall = errors.New("rainfall must not be negative")
)

// WeatherErrorCode defines error codes for weather errors.
// Format: WTH-XXYYYY where XX is category and YYYY is specific error.
type WeatherErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeLocationRequired WeatherErrorCode = "WTH-010001"
	ErrCodeInvalidHumidity  WeatherErrorCode = "WTH-010002"
	ErrCodeInvalidRainfall  WeatherErrorCode = "WTH-010003"
)

// WeatherError represents a weather error with code and message.
type WeatherError struct {
	Code    WeatherErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WeatherError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WeatherError) Unwrap() error {
	return e.Err
}

// NewWeatherError creates a new WeatherError with the given code and message.
func NewWeatherError(code WeatherErrorCode, message string, err error) *WeatherError {
	return &WeatherError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
