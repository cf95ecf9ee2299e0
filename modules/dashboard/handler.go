package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/progressdash/handler"
	"github.com/dmitrymomot/progressdash/pkg/binder"
	"github.com/dmitrymomot/progressdash/pkg/logger"
	"github.com/dmitrymomot/progressdash/pkg/session"
	"github.com/dmitrymomot/progressdash/pkg/status"
)

// ActionRequest is the form posted to the dashboard. Logout takes precedence over
// Update; a request with neither is an unknown action.
type ActionRequest struct {
	Logout     bool    `form:"logout"`
	Update     bool    `form:"update"`
	Assignment *string `form:"assignment"`
	Score      *string `form:"score"`
}

// Handler serves the dashboard API. All routes require a logged-in session.
type Handler struct {
	service  *Service
	sessions *session.Manager
	logger   *slog.Logger
}

// NewHandler creates the dashboard HTTP handler.
func NewHandler(service *Service, sessions *session.Manager, log *slog.Logger) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{
		service:  service,
		sessions: sessions,
		logger:   log,
	}
}

// Handle returns the dashboard router:
//
//	GET  /  the dashboard payload
//	POST /  logout=true, or update=true&assignment=<id>&score=<n>
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(h.sessions.RequireLogin)

	r.Get("/", handler.Wrap(h.read,
		handler.WithErrorHandler[handler.Context, struct{}](handler.NewErrorHandler(h.logger)),
	))
	r.Post("/", handler.Wrap(h.action,
		handler.WithBinders[handler.Context, ActionRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, ActionRequest](
			handler.NewErrorHandler(h.logger, handler.WithBindStatus(status.Error, http.StatusBadRequest)),
		),
	))

	return r
}

func (h *Handler) read(ctx handler.Context, _ struct{}) handler.Response {
	sess, ok := ctx.Session()
	if !ok {
		return handler.Status(status.UserNotLoggedIn, nil)
	}

	payload, err := h.service.Load(ctx, sess.UserID, sess.UserName)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load dashboard",
			logger.Component("dashboard"),
			logger.UserID(sess.UserID),
			logger.Error(err),
		)
		return handler.Failure()
	}

	return handler.Status(status.Success, payload)
}

func (h *Handler) action(ctx handler.Context, req ActionRequest) handler.Response {
	sess, ok := ctx.Session()
	if !ok {
		return handler.Status(status.UserNotLoggedIn, nil)
	}

	switch {
	case req.Logout:
		if err := h.sessions.Guard(ctx.ResponseWriter(), ctx.Request()).Destroy(ctx); err != nil {
			h.logger.ErrorContext(ctx, "failed to destroy session",
				logger.Component("dashboard"),
				logger.UserID(sess.UserID),
				logger.Error(err),
			)
			return handler.Failure()
		}
		h.logger.InfoContext(ctx, "user logged out", logger.Component("dashboard"), logger.UserID(sess.UserID))
		return handler.Status(status.Success, nil)

	case req.Update:
		code, result, err := h.service.UpdateScore(ctx, sess.UserID, req.Assignment, req.Score)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to update assignment score",
				logger.Component("dashboard"),
				logger.UserID(sess.UserID),
				logger.Error(err),
			)
			return handler.Failure()
		}
		if code != status.Success {
			return handler.Status(code, nil)
		}
		return handler.Status(status.Success, result)

	default:
		return handler.Status(status.Error, nil, handler.WithHTTPStatus(http.StatusBadRequest))
	}
}
