package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("binder: unsupported content type")
	ErrMissingContentType   = errors.New("binder: no content type")
	// ErrInvalidForm wraps both body parse failures and field conversion failures.
	ErrInvalidForm  = errors.New("binder: malformed form")
	ErrInvalidQuery = errors.New("binder: malformed query")

	// ErrBinderNotApplicable tells handler.Wrap to move on to the next binder,
	// e.g. the form binder on a GET request.
	ErrBinderNotApplicable = errors.New("binder: not applicable")
)
