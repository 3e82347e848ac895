// Package common contains shared constants and sentinel errors used across
// the experiences client components.
package common

// Durable storage keys owned by the session store.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// HTTP header names used on outbound API requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// DefaultAPIBaseURL is the local development backend address.
const DefaultAPIBaseURL = "http://localhost:3000/api"
