// Package guard implements the navigation precondition for protected
// views: every attempt re-evaluates session validity, and a denial
// redirects to the login entry point. Guard decisions are never cached.
package guard

import (
	"context"
	"net/url"

	"github.com/pvolkovs/staffdesk/internal/logging"
)

// LoginPath is where denied navigations are redirected.
const LoginPath = "/login"

// Session is the part of the session store the guard consults.
type Session interface {
	IsValid(ctx context.Context) bool
}

// Navigator accepts a target path plus optional query parameters.
type Navigator interface {
	Navigate(ctx context.Context, path string, query url.Values)
}

// Guard permits or denies entry to protected routes.
type Guard struct {
	session Session
	nav     Navigator
	log     logging.Logger
}

func New(session Session, nav Navigator, log logging.Logger) *Guard {
	return &Guard{session: session, nav: nav, log: log}
}

// CanActivate reports whether the route may be entered. On denial it
// redirects to LoginPath and returns false. Denial is a deterministic
// redirect, not an error.
func (g *Guard) CanActivate(ctx context.Context, route string) bool {
	if g.session.IsValid(ctx) {
		return true
	}
	g.log.Info(ctx, "navigation denied, redirecting to login", "route", route)
	g.nav.Navigate(ctx, LoginPath, nil)
	return false
}
