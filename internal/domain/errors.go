package domain

import "errors"

var (
	// ErrNotFound indicates the requested short code does not exist.
	ErrNotFound = errors.New("short code not found")

	// ErrCodeTaken indicates the short code is already in use.
	ErrCodeTaken = errors.New("short code already taken")

	// ErrMissingURL indicates the request had no long URL.
	ErrMissingURL = errors.New("long_url is required")

	// ErrInvalidURL indicates the long URL failed validation.
	ErrInvalidURL = errors.New("invalid url")

	// ErrInvalidCode indicates a custom code with a disallowed shape.
	ErrInvalidCode = errors.New("invalid custom code")
)

// IsNotFound reports whether err is a not-found condition.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err indicates a short code uniqueness conflict.
func IsConflict(err error) bool { return errors.Is(err, ErrCodeTaken) }

// IsValidation reports whether err indicates rejected client input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingURL) || errors.Is(err, ErrInvalidURL) || errors.Is(err, ErrInvalidCode)
}
