package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/progressdash/pkg/redis"
)

// KV is the key/value surface RedisStore needs; *redis.Storage implements it.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RedisStore keeps sessions in Redis as JSON, so every instance behind a load
// balancer sees the same sessions. Expiring sessions get a matching key TTL.
type RedisStore struct {
	kv  KV
	now func() time.Time
}

func NewRedisStore(kv KV) *RedisStore {
	return &RedisStore{kv: kv, now: time.Now}
}

func (s *RedisStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	var ttl time.Duration
	if !session.ExpiresAt.IsZero() {
		ttl = session.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return ErrInvalidSession
		}
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	return s.kv.Set(ctx, session.Token, payload, ttl)
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	payload, err := s.kv.Get(ctx, token)
	if errors.Is(err, redis.ErrKeyNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if session.IsExpired(s.now()) {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.kv.Delete(ctx, token)
}
