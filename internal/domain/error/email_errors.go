// Package error defines domain-specific errors for the Farm Tracker application.
package error

import "errors"

// Email domain errors.
var (
	// ErrEmailQueueFailed is returned when an email cannot be queued.
	ErrEmailQueueFailed = errors.New("failed to queue email")

	// ErrEmailSendFailed is returned when the provider rejects an email.
	ErrEmailSendFailed = errors.New("failed to send email")

	// ErrEmailTemplateNotFound is returned when an unknown template is requested.
	ErrEmailTemplateNotFound = errors.New("email template not found")

	// ErrEmailJobNotFound is returned when an email job is not found in the queue.
	ErrEmailJobNotFound = errors.New("email job not found")
)

// EmailErrorCode defines error codes for email errors.
// Format: EML-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	ErrCodeEmailQueueFailed      EmailErrorCode = "EML-010001"
	ErrCodeEmailSendFailed       EmailErrorCode = "EML-010002"
	ErrCodeEmailTemplateNotFound EmailErrorCode = "EML-010003"

	// Delivery errors (03XXXX). Permanent failures are never retried.
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-030001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-030002"

	// Lookup errors (02XXXX)
	ErrCodeEmailJobNotFound EmailErrorCode = "EML-020001"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
