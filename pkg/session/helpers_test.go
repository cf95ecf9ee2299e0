package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/progressdash/pkg/cookie"
	"github.com/dmitrymomot/progressdash/pkg/session"
)

const testSecret = "this-is-a-very-long-secret-key-32-chars-long"

func newCookies(t *testing.T) *cookie.Manager {
	t.Helper()
	m, err := cookie.New([]string{testSecret})
	require.NoError(t, err)
	return m
}

func newManager(t *testing.T, opts ...session.Option) (*session.Manager, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })

	base := []session.Option{
		session.WithCookieManager(newCookies(t)),
		session.WithStore(store),
	}
	return session.New(append(base, opts...)...), store
}

// requestWith returns a request that carries the cookies written to w.
func requestWith(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge >= 0 {
			r.AddCookie(c)
		}
	}
	return r
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "sessionIdentifier" {
			return c
		}
	}
	t.Fatal("session cookie not written")
	return nil
}
