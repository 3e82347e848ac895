// Package session owns the client's authentication state.
//
// A Store is the single source of truth for "is somebody logged in". It is
// created once at start-up and handed to every component that needs it;
// there is no package-level state. Only Adopt and Clear mutate it, and only
// they touch durable storage (the SQLite metadata table, keys "token" and
// "user"). Restore rebuilds memory from that storage after a restart.
//
// Storage failures never reach callers: they are logged and the in-memory
// state still follows the call. A corrupt or partial record restores as the
// logged-out state.
package session
