package auth

import "context"

// Credential is what the client submitted on a login attempt.
// An empty TwoFactorCode means no code was submitted.
type Credential struct {
	Username      string
	Password      string
	TwoFactorCode string
}

// UserRecord is the stored identity resolved for a username.
// TwoFactorSecret is already decrypted; it is empty when the user has no second factor
// or when the submitted password could not decrypt it.
type UserRecord struct {
	ID              int64
	PasswordHash    string
	TwoFactorSecret []byte
}

// UserFinder resolves a user by name, decrypting the second factor secret with the
// submitted plaintext password. It returns ErrUserNotFound when no user matches.
type UserFinder interface {
	FindUserByUsername(ctx context.Context, username, password string) (UserRecord, error)
}

// SessionEstablisher binds a fresh session to the current request.
// Any session already attached to the request is discarded first.
type SessionEstablisher interface {
	Establish(ctx context.Context, userID int64, userName string) error
}

// PasswordVerifier checks a plaintext password against a stored one-way hash.
type PasswordVerifier interface {
	Verify(hash, password string) bool
}
