package account

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/progressdash/handler"
	"github.com/dmitrymomot/progressdash/pkg/auth"
	"github.com/dmitrymomot/progressdash/pkg/binder"
	"github.com/dmitrymomot/progressdash/pkg/logger"
	"github.com/dmitrymomot/progressdash/pkg/session"
)

// LoginRequest is the login form.
type LoginRequest struct {
	Username  string `form:"username"`
	Password  string `form:"password"`
	TwoFactor string `form:"twoFactor"`
}

func (r LoginRequest) credential() auth.Credential {
	return auth.Credential{
		Username:      r.Username,
		Password:      r.Password,
		TwoFactorCode: r.TwoFactor,
	}
}

// LoginService answers login attempts with the outcome code of the authenticator.
// Every outcome carries a null payload.
type LoginService struct {
	authn    *auth.Authenticator
	sessions *session.Manager
	logger   *slog.Logger
}

func NewLoginService(authn *auth.Authenticator, sessions *session.Manager, log *slog.Logger) *LoginService {
	if log == nil {
		log = logger.Discard()
	}
	return &LoginService{
		authn:    authn,
		sessions: sessions,
		logger:   log,
	}
}

func (s *LoginService) Handle() http.Handler {
	r := chi.NewRouter()

	// A body that cannot be parsed as a form is reported as MalformedInput.
	r.Post("/", handler.Wrap(s.login,
		handler.WithBinders[handler.Context, LoginRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, LoginRequest](handler.NewErrorHandler(s.logger)),
	))

	return r
}

func (s *LoginService) login(ctx handler.Context, req LoginRequest) handler.Response {
	guard := s.sessions.Guard(ctx.ResponseWriter(), ctx.Request())

	code, err := s.authn.Login(ctx, guard, req.credential())
	if err != nil {
		s.logger.ErrorContext(ctx, "login failed",
			logger.Component("account"),
			logger.Error(err),
		)
		return handler.Failure()
	}

	return handler.Status(code, nil)
}
