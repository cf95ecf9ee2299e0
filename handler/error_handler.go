package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/progressdash/pkg/binder"
	"github.com/dmitrymomot/progressdash/pkg/logger"
	"github.com/dmitrymomot/progressdash/pkg/requestid"
	"github.com/dmitrymomot/progressdash/pkg/status"
)

// errorHandlerConfig configures the envelope error handler
type errorHandlerConfig struct {
	bindStatus     status.Code
	bindHTTPStatus int
}

// ErrorHandlerOption configures NewErrorHandler.
type ErrorHandlerOption func(*errorHandlerConfig)

// WithBindStatus sets the outcome reported when the request cannot be bound.
// httpStatus 0 keeps code.HTTPStatus().
func WithBindStatus(code status.Code, httpStatus int) ErrorHandlerOption {
	return func(c *errorHandlerConfig) {
		c.bindStatus = code
		c.bindHTTPStatus = httpStatus
	}
}

// IsBindingError reports whether err comes from request binding, i.e. the client sent
// something the handler could not parse.
func IsBindingError(err error) bool {
	return errors.Is(err, binder.ErrInvalidForm) ||
		errors.Is(err, binder.ErrInvalidQuery) ||
		errors.Is(err, binder.ErrUnsupportedMediaType) ||
		errors.Is(err, binder.ErrMissingContentType)
}

// NewErrorHandler creates the error handler shared by the API modules.
//
// Binding failures are answered with MalformedInput (configurable via WithBindStatus)
// and logged at warn level. Everything else is an infrastructure failure: it is logged
// at error level with the request id and answered with the Error envelope and HTTP 500.
// The error text never reaches the client.
func NewErrorHandler(log *slog.Logger, opts ...ErrorHandlerOption) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	cfg := errorHandlerConfig{bindStatus: status.MalformedInput}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		level := slog.LevelError
		resp := Failure()

		if IsBindingError(err) {
			level = slog.LevelWarn
			var envOpts []EnvelopeOption
			if cfg.bindHTTPStatus > 0 {
				envOpts = append(envOpts, WithHTTPStatus(cfg.bindHTTPStatus))
			}
			resp = Status(cfg.bindStatus, nil, envOpts...)
		}

		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
			http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}
