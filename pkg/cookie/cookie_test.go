package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/progressdash/pkg/cookie"
)

const (
	secret    = "this-is-a-very-long-secret-key-32-chars-long"
	oldSecret = "an-older-secret-that-is-also-32-characters"
)

// roundTrip copies the cookies written to w into a new request.
func roundTrip(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("no secrets", func(t *testing.T) {
		t.Parallel()
		_, err := cookie.New(nil)
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("only blank secrets", func(t *testing.T) {
		t.Parallel()
		_, err := cookie.New([]string{"", "  "})
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("short secret", func(t *testing.T) {
		t.Parallel()
		_, err := cookie.New([]string{secret, "short"})
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
	})

	t.Run("from config", func(t *testing.T) {
		t.Parallel()
		m, err := cookie.NewFromConfig(cookie.Config{Secrets: []string{secret}})
		require.NoError(t, err)
		assert.NotNil(t, m)
	})
}

func TestManager_DefaultAttributes(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{secret})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.Set(w, "sessionIdentifier", "value")

	header := w.Header().Get("Set-Cookie")
	assert.Contains(t, header, "Path=/")
	assert.Contains(t, header, "Secure")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "SameSite=Strict")
	assert.NotContains(t, header, "Max-Age")
	assert.NotContains(t, header, "Domain")
}

func TestManager_Options(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{secret}, cookie.WithSecure(false))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.Set(w, "c", "v", cookie.WithDomain("example.com"), cookie.WithMaxAge(60), cookie.WithPath("/api"))

	header := w.Header().Get("Set-Cookie")
	assert.NotContains(t, header, "Secure")
	assert.Contains(t, header, "Domain=example.com")
	assert.Contains(t, header, "Max-Age=60")
	assert.Contains(t, header, "Path=/api")
}

func TestManager_GetMissing(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{secret})
	require.NoError(t, err)

	_, err = m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "missing")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)

	_, err = m.GetSigned(httptest.NewRequest(http.MethodGet, "/", nil), "missing")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{secret})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.Delete(w, "sessionIdentifier")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
}

func TestManager_Signed(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{secret})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		m.SetSigned(w, "sid", "token-value")

		got, err := m.GetSigned(roundTrip(t, w), "sid")
		require.NoError(t, err)
		assert.Equal(t, "token-value", got)
	})

	t.Run("tampered value", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		m.SetSigned(w, "sid", "token-value")
		c := w.Result().Cookies()[0]

		_, sig, ok := strings.Cut(c.Value, ".")
		require.True(t, ok)

		other := httptest.NewRecorder()
		m.Set(other, "sid", "b3RoZXItdG9rZW4."+sig)

		_, err := m.GetSigned(roundTrip(t, other), "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("unsigned value", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		m.Set(w, "sid", "plain")

		_, err := m.GetSigned(roundTrip(t, w), "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
	})

	t.Run("bad encoding", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		m.Set(w, "sid", "!!!.???")

		_, err := m.GetSigned(roundTrip(t, w), "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
	})
}

func TestManager_SecretRotation(t *testing.T) {
	t.Parallel()

	old, err := cookie.New([]string{oldSecret})
	require.NoError(t, err)
	rotated, err := cookie.New([]string{secret, oldSecret})
	require.NoError(t, err)
	fresh, err := cookie.New([]string{secret})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	old.SetSigned(w, "sid", "token-value")
	r := roundTrip(t, w)

	got, err := rotated.GetSigned(r, "sid")
	require.NoError(t, err)
	assert.Equal(t, "token-value", got)

	_, err = fresh.GetSigned(r, "sid")
	assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
}
