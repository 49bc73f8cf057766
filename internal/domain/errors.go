package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a member email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateGroup is returned when a contact group name is already taken.
	ErrDuplicateGroup = errors.New("group already exists")
	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password so callers cannot enumerate registered addresses.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrMailerNotConfigured is returned by credential-gated email operations
	// when no usable provider credential is available.
	ErrMailerNotConfigured = errors.New("email service not configured")
)

// SendError carries the provider's HTTP status and raw response body when an
// outbound send is rejected. The body is surfaced to callers verbatim.
type SendError struct {
	StatusCode int
	Body       string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}
