package domain

import (
	"errors"
	"fmt"
)

// NoStatus marks a FetchError that never received an HTTP response.
const NoStatus = 0

// ValidationError is a missing or malformed client-side input. It is raised
// before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FetchError is a transport failure for a single call: network error,
// timeout, non-2xx status or an unparseable body.
type FetchError struct {
	Status int
	Path   string
	Err    error
}

func (e *FetchError) Error() string {
	switch {
	case e.Status != NoStatus:
		return fmt.Sprintf("%s: unexpected status %d", e.Path, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("%s: request failed", e.Path)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StatusOf returns the HTTP status carried by err, or NoStatus.
func StatusOf(err error) int {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Status
	}
	return NoStatus
}
