// Package clientip resolves the address of the client behind a request.
//
// Forwarding headers are only honoured when listed in Config.TrustedHeaders,
// because any client can set them. Deployments behind a reverse proxy name the
// header the proxy overwrites, for example X-Real-IP; direct deployments leave
// the list empty and RemoteAddr is used.
//
//	r.Use(clientip.Middleware(cfg.TrustedHeaders...))
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
