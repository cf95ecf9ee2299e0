package auth

import "errors"

var (
	ErrUserNotFound          = errors.New("auth.user_not_found")
	ErrUserLookupFailed      = errors.New("auth.user_lookup_failed")
	ErrSessionNotEstablished = errors.New("auth.session_not_established")
	ErrPasswordHashFailed    = errors.New("auth.password_hash_failed")
)
