// Package models defines the client-side view models exchanged with the
// experiences backend: identities, profiles, experiences and questions.
package models
