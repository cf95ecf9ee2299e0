package session

import (
	"context"
	"net/http"
)

// Guard is the session handle of a single request.
//
// It remembers what it did: after Establish it reports the new session as logged in,
// after Destroy it reports nothing, regardless of the cookie the request arrived with.
// A Guard must not be shared between goroutines.
type Guard struct {
	m *Manager
	w http.ResponseWriter
	r *http.Request

	token    string
	resolved bool
}

func (g *Guard) current() string {
	if !g.resolved {
		g.token, _ = g.m.token(g.r)
		g.resolved = true
	}
	return g.token
}

// IsLoggedIn reports whether the request currently has an authenticated session.
func (g *Guard) IsLoggedIn(ctx context.Context) bool {
	_, err := g.m.lookup(ctx, g.current())
	return err == nil
}

// Session returns the current authenticated session.
func (g *Guard) Session(ctx context.Context) (*Session, error) {
	return g.m.lookup(ctx, g.current())
}

// Establish replaces any current session with a new one for the given identity.
func (g *Guard) Establish(ctx context.Context, userID int64, userName string) error {
	s, err := g.m.establish(ctx, g.w, g.current(), userID, userName)
	if err != nil {
		return err
	}
	g.token = s.Token
	return nil
}

// Destroy ends the current session, if any.
func (g *Guard) Destroy(ctx context.Context) error {
	token := g.current()
	g.token = ""
	return g.m.destroy(ctx, g.w, token)
}
