// Package services holds the application logic the CLI views call into.
// Services talk to the backend only through client.Client and change the
// session only through the injected session store.
package services
