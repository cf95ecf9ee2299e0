// Package handler provides type-safe HTTP handlers that answer with the API status
// envelope.
//
// A HandlerFunc receives a Context and a request value bound by the configured binders
// and returns a Response. Wrap turns it into an http.HandlerFunc:
//
//	type LoginRequest struct {
//		Username string `form:"username"`
//		Password string `form:"password"`
//	}
//
//	login := func(ctx handler.Context, req LoginRequest) handler.Response {
//		return handler.Status(status.Success, nil)
//	}
//
//	r.Post("/login", handler.Wrap(login,
//		handler.WithBinders[handler.Context, LoginRequest](binder.Form()),
//		handler.WithErrorHandler[handler.Context, LoginRequest](handler.NewErrorHandler(log)),
//	))
//
// # Envelope
//
// Every response body has the shape {"status": <int>, "data": <payload|null>}. Status
// derives the HTTP status from the code (status.Code.HTTPStatus); WithHTTPStatus
// overrides it, e.g. for the 400 answer to an unknown dashboard action.
//
// # Errors
//
// Binding and rendering errors go to the ErrorHandler. NewErrorHandler maps binding
// failures to a client outcome and everything else to the Error envelope with HTTP 500,
// logging the cause server-side only.
//
// # Request logging
//
// RequestLogger is a plain net/http middleware writing one log line per request.
package handler
