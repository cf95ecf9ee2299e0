package session

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/progressdash/pkg/logger"
	"github.com/dmitrymomot/progressdash/pkg/status"
)

// RequireLogin lets only requests with an authenticated session through and stores
// the session in the request context. Other requests are answered by the denied
// handler, which by default writes the UserNotLoggedIn envelope with HTTP 401.
func (m *Manager) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		s, err := m.Current(ctx, r)
		if errors.Is(err, ErrSessionNotFound) {
			m.denied(w, r, nil)
			return
		}
		if err != nil {
			m.logger.ErrorContext(ctx, "session lookup failed", logger.Component("session"), logger.Error(err))
			m.denied(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(ctx, s)))
	})
}

func writeDenied(w http.ResponseWriter, _ *http.Request, err error) {
	code := status.UserNotLoggedIn
	if err != nil {
		code = status.Error
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code.HTTPStatus())
	_, _ = w.Write([]byte(`{"status":` + strconv.Itoa(code.Int()) + `,"data":null}`))
}

type ctxKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by RequireLogin.
func FromContext(ctx context.Context) (*Session, bool) {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s, s != nil
}

// UserIDFromContext returns the authenticated user id, or false outside of RequireLogin.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	if s, ok := FromContext(ctx); ok && s.IsAuthenticated() {
		return s.UserID, true
	}
	return 0, false
}
