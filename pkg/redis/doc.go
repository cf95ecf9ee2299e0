// Package redis connects to Redis with go-redis and exposes the small key/value
// surface the session store needs.
//
//	client, err := redis.Connect(ctx, cfg)
//	kv := redis.NewStorage(client, "session:")
//	err = kv.Set(ctx, token, payload, 0)
//
// Healthcheck returns a probe suitable for a readiness endpoint.
package redis
