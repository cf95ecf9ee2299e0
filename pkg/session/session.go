package session

import "time"

// Session binds a token to an authenticated identity.
// Database identifiers are positive, so a zero UserID means the field is unset.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at,omitzero"` // zero: lives until logout
}

// IsAuthenticated reports whether both identity fields are set.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID > 0 && s.UserName != ""
}

// IsExpired reports whether the session has a lifetime and it has elapsed at now.
func (s *Session) IsExpired(now time.Time) bool {
	return s != nil && !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
