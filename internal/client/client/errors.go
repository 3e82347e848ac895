package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// GenericErrorCode is used when a failed response carries no error code.
const GenericErrorCode = "HTTP_ERROR"

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Code    string
	Details string
}

func (e *APIError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s (status %d)", e.Code, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Details)
}

// Is lets callers match 401 and 403 answers with ErrUnauthorized.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

// newAPIError builds an APIError from a failed response body, falling back
// to GenericErrorCode and the HTTP status text.
func newAPIError(status int, body *ErrorBody) *APIError {
	e := &APIError{Status: status, Code: GenericErrorCode, Details: http.StatusText(status)}
	if body == nil {
		return e
	}
	if body.Code != "" {
		e.Code = body.Code
	}
	if body.Details != "" {
		e.Details = body.Details
	}
	return e
}
