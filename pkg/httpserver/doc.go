// Package httpserver runs the API behind net/http with graceful shutdown.
//
// Run binds the listener, serves until the context is cancelled or the process
// receives SIGINT or SIGTERM, then drains in-flight requests within the
// shutdown timeout and runs the stop hooks. Stop hooks are the place to close
// connection pools.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//		httpserver.WithLogger(log),
//		httpserver.WithStopHook(func(*slog.Logger) { pool.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		// handle error
//	}
//
// LivenessHandler and ReadinessHandler serve the /healthz and /readyz probes.
// Readiness reports each named Check as "ok" or "unavailable" without exposing
// the underlying error.
package httpserver
