package redis

import "errors"

var (
	ErrNoURL       = errors.New("redis: REDIS_URL is empty")
	ErrInvalidURL  = errors.New("redis: invalid connection URL")
	ErrNotReady    = errors.New("redis: server not ready before timeout")
	ErrUnavailable = errors.New("redis: ping failed")

	// ErrKeyNotFound is returned by Storage.Get for a missing or expired key.
	ErrKeyNotFound = errors.New("redis: key not found")
	ErrEmptyKey    = errors.New("redis: empty key")
)
