// Package guard decides whether a protected view may be entered.
package guard

import (
	"context"

	"github.com/dmitrijs2005/experiences/internal/client/session"
	"github.com/dmitrijs2005/experiences/internal/logging"
)

// Decision is the outcome of evaluating a navigation.
type Decision int

const (
	Allowed Decision = iota
	Redirected
)

func (d Decision) String() string {
	if d == Allowed {
		return "allowed"
	}
	return "redirected"
}

// LoginView is where redirected navigations end up.
const LoginView = "login"

// SessionReader is the part of the session store the guard needs.
type SessionReader interface {
	Current() session.State
}

// Evaluate reads the session at call time. Nothing is cached.
func Evaluate(s SessionReader) Decision {
	if !s.Current().IsAuthenticated {
		return Redirected
	}
	return Allowed
}

// Guard gates a fixed set of protected views.
type Guard struct {
	session   SessionReader
	protected map[string]struct{}
	logger    logging.Logger
}

func New(s SessionReader, logger logging.Logger, protected ...string) *Guard {
	p := make(map[string]struct{}, len(protected))
	for _, v := range protected {
		p[v] = struct{}{}
	}
	return &Guard{session: s, protected: p, logger: logger.With("component", "guard")}
}

// Protects reports whether view requires a session.
func (g *Guard) Protects(view string) bool {
	_, ok := g.protected[view]
	return ok
}

// Enter navigates to view: it runs render when the view is public or the
// session is authenticated, and redirect otherwise. The decision is made
// anew on every call.
func (g *Guard) Enter(ctx context.Context, view string, render, redirect func(ctx context.Context) error) (Decision, error) {
	if !g.Protects(view) || Evaluate(g.session) == Allowed {
		return Allowed, render(ctx)
	}
	g.logger.Info(ctx, "redirecting to login", "view", view, "target", LoginView)
	return Redirected, redirect(ctx)
}
