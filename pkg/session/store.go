package session

import (
	"context"
	"errors"
)

var (
	// ErrSessionNotFound covers a missing cookie, a bad signature and an unknown token.
	ErrSessionNotFound = errors.New("session: not found")
	ErrInvalidSession  = errors.New("session: invalid")
	ErrStoreFailure    = errors.New("session: store failure")
	ErrIDGeneration    = errors.New("session: cannot generate token")
)

// Store persists sessions by token.
// Get returns ErrSessionNotFound for unknown or expired tokens; Delete of an unknown
// token is not an error.
type Store interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
