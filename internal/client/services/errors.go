package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/experiences/internal/common"
)

var (
	ErrLoginRejected      = errors.New("login rejected")
	ErrRegisterRejected   = errors.New("registration rejected")
	ErrFeedUnavailable    = errors.New("failed to load experiences")
	ErrProfileUnavailable = errors.New("failed to load profile")
	ErrContactRejected    = errors.New("message not sent")
	ErrExperienceRejected = errors.New("experience not saved")
)

// ValidationError reports an input rejected before any request was made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return common.ErrorValidation
}

// rejected wraps sentinel with the backend's explanation, when there is one.
func rejected(sentinel error, details string) error {
	if details == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, details)
}
