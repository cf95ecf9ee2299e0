// Package binder binds HTTP request data to Go structs.
//
// Binders share one signature, func(*http.Request, any) error, so they can be passed to
// handler.WithBinders and applied in order. A binder that does not handle a request
// returns ErrBinderNotApplicable and the next binder is tried.
//
//	type UpdateRequest struct {
//		Update     bool    `form:"update"`
//		Assignment *string `form:"assignment"` // nil when absent
//		Score      *string `form:"score"`
//	}
//
// Available binders:
//
//   - Form(): application/x-www-form-urlencoded and multipart/form-data bodies
//   - Query(): URL query parameters
//
// Errors wrap ErrUnsupportedMediaType, ErrMissingContentType, ErrInvalidForm or
// ErrInvalidQuery so callers can tell a malformed request from an application failure.
package binder
