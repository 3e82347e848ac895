// Package client is the only boundary between the experiences client and
// its REST backend.
//
// # Overview
//
// The package provides:
//  1. The Client contract: login, registration, the advisory wake-up call,
//     experiences, questions, profile and contact endpoints.
//  2. HTTPClient, a net/http implementation that builds JSON requests,
//     attaches the bearer token from a TokenSource on authenticated
//     endpoints and normalizes every answer into an Envelope.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the SQLite file backing the session store and applies embedded goose
//     migrations.
//
// # Error Handling
//
// Failures fall into four groups:
//   - no response at all: errors.Is(err, ErrUnavailable);
//   - non-2xx answers: *APIError carrying the backend code and details;
//   - authenticated call without a session: ErrNotAuthenticated, returned
//     before any request is issued;
//   - WakeUp failures: logged, never returned.
//
// The client never retries.
package client
