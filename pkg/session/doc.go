// Package session manages the authenticated session that gates the API.
//
// A session is created only by a successful login and carries the user id and user
// name; a stored record missing either is treated as no session. The token is 32 random
// bytes, kept server-side in a Store and delivered to the browser in an HMAC-signed
// cookie (default name "sessionIdentifier") with Path=/, Secure, HttpOnly and
// SameSite=Strict and without Max-Age, so it is dropped when the browser closes.
//
// Two stores are provided: MemoryStore for a single instance and RedisStore backed by
// pkg/redis for deployments with several instances.
//
//	m := session.NewFromConfig(cfg,
//	    session.WithCookieManager(cookies),
//	    session.WithStore(session.NewRedisStore(redis.NewStorage(client, cfg.RedisKeyPrefix))),
//	)
//
//	r.With(m.RequireLogin).Get("/api/dashboard", dashboardHandler)
//
// Login code works with a per-request Guard, which establishes or destroys the
// session and answers IsLoggedIn consistently with what it already did during the
// request.
package session
