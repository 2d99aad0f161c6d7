package application

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a request rejected before any storage work: a
	// required field missing or empty after trimming, or a malformed value.
	ErrValidation = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// invalidf wraps ErrValidation with a field-level message.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
