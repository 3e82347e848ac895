// Package cli provides the interactive experiences command-line client.
//
// It wires configuration, the local session database, the REST API client,
// services and an interactive REPL. Each REPL command is a view; the
// profile and write views sit behind the route guard and send the user to
// the login flow when no session is present.
//
// Key features:
//   - Login / Register / Logout, with the session surviving restarts
//   - Experiences feed with questions resolved to their text
//   - Profile of the logged-in user
//   - Writing, editing and deleting experiences
//   - Contact form
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
