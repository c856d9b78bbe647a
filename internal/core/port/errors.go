package port

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by use cases and adapters. The HTTP adapter maps
// them to status codes with errors.Is.
var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("admin access required")
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrNoRecipients    = errors.New("no active subscribers found for this list")
	ErrAlreadySent     = errors.New("campaign has already been sent")
	ErrEmailDelivery   = errors.New("email delivery failed")
	ErrVideoNotReady   = errors.New("video asset not ready")
	ErrVideoFailed     = errors.New("video asset processing failed")
)

// ValidationError describes malformed input for a single field. It matches
// ErrValidation with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError returns a *ValidationError for field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// DeliveryError reports a failed email delivery. Accepted counts the
// recipients the provider took before failing, so callers can tell a clean
// failure from a partial one.
type DeliveryError struct {
	Accepted int
	Err      error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s after %d recipients: %v", ErrEmailDelivery, e.Accepted, e.Err)
}

func (e *DeliveryError) Unwrap() []error {
	return []error{ErrEmailDelivery, e.Err}
}
