package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/progressdash/pkg/cookie"
	"github.com/dmitrymomot/progressdash/pkg/logger"
)

const tokenSize = 32 // 256 bits

// Manager ties the session store to the signed session cookie.
// It is safe for concurrent use.
type Manager struct {
	store   Store
	cookies *cookie.Manager
	config  Config
	logger  *slog.Logger
	denied  func(w http.ResponseWriter, r *http.Request, err error)
	now     func() time.Time
}

// New creates a Manager. A cookie manager is mandatory; without a store an in-memory
// store is used.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		logger: logger.Discard(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.cookies == nil {
		panic("session: cookie manager is required")
	}
	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}
	if m.denied == nil {
		m.denied = writeDenied
	}

	return m
}

// Current returns the authenticated session referenced by the request cookie.
// It returns ErrSessionNotFound when there is no cookie, the signature is wrong, the
// store has no such token or the stored session lacks either identity field.
func (m *Manager) Current(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.token(r)
	if err != nil {
		return nil, err
	}
	return m.lookup(ctx, token)
}

// IsLoggedIn reports whether the request carries a valid authenticated session.
// Store failures are logged and reported as not logged in.
func (m *Manager) IsLoggedIn(ctx context.Context, r *http.Request) bool {
	_, err := m.Current(ctx, r)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		m.logger.ErrorContext(ctx, "session lookup failed", logger.Component("session"), logger.Error(err))
	}
	return err == nil
}

// Establish discards any session referenced by the request and binds a new one for
// the given identity, writing its token to the response cookie.
func (m *Manager) Establish(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int64, userName string) error {
	previous, _ := m.token(r)
	_, err := m.establish(ctx, w, previous, userID, userName)
	return err
}

// Destroy removes the session referenced by the request and expires the cookie.
// It succeeds when there is no session.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	token, _ := m.token(r)
	return m.destroy(ctx, w, token)
}

// Guard returns a handle bound to one request and its response writer.
func (m *Manager) Guard(w http.ResponseWriter, r *http.Request) *Guard {
	return &Guard{m: m, w: w, r: r}
}

func (m *Manager) establish(ctx context.Context, w http.ResponseWriter, previous string, userID int64, userName string) (*Session, error) {
	if userID <= 0 || userName == "" {
		return nil, ErrInvalidSession
	}

	if previous != "" {
		if err := m.store.Delete(ctx, previous); err != nil {
			return nil, errors.Join(ErrStoreFailure, err)
		}
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := m.now()
	s := &Session{
		Token:     token,
		UserID:    userID,
		UserName:  userName,
		CreatedAt: now,
	}
	if m.config.MaxLifetime > 0 {
		s.ExpiresAt = now.Add(m.config.MaxLifetime)
	}

	if err := m.store.Create(ctx, s); err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}

	m.cookies.SetSigned(w, m.config.CookieName, token, m.cookieOptions()...)
	return s, nil
}

func (m *Manager) destroy(ctx context.Context, w http.ResponseWriter, token string) error {
	m.cookies.Delete(w, m.config.CookieName, m.cookieOptions()...)

	if token == "" {
		return nil
	}
	if err := m.store.Delete(ctx, token); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

func (m *Manager) lookup(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	s, err := m.store.Get(ctx, token)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}

	if !s.IsAuthenticated() || s.IsExpired(m.now()) {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// token reads the signed session token from the request cookie.
func (m *Manager) token(r *http.Request) (string, error) {
	token, err := m.cookies.GetSigned(r, m.config.CookieName)
	if err != nil {
		return "", ErrSessionNotFound
	}
	return token, nil
}

func (m *Manager) cookieOptions() []cookie.Option {
	return []cookie.Option{
		cookie.WithPath("/"),
		cookie.WithDomain(m.config.CookieDomain),
		cookie.WithSecure(m.config.SecureCookie),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteStrictMode),
		cookie.WithMaxAge(0),
	}
}

func generateToken() (string, error) {
	b := make([]byte, tokenSize)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrIDGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
