package common

import "errors"

var (
	// ErrorValidation is matched by every client-side input validation failure.
	ErrorValidation = errors.New("validation error")

	// ErrInvalidToken is returned when a stored token cannot be introspected.
	ErrInvalidToken = errors.New("invalid token")
)
