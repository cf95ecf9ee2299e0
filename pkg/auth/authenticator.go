package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/progressdash/pkg/logger"
	"github.com/dmitrymomot/progressdash/pkg/status"
	"github.com/dmitrymomot/progressdash/pkg/totp"
	"github.com/dmitrymomot/progressdash/pkg/validator"
)

// Authenticator runs the login sequence and reports one status code per attempt.
// It holds no per-request state and is safe for concurrent use.
type Authenticator struct {
	users    UserFinder
	totp     *totp.Generator
	verifier PasswordVerifier
	logger   *slog.Logger
}

type Option func(*Authenticator)

// WithPasswordVerifier replaces the default bcrypt verifier.
func WithPasswordVerifier(v PasswordVerifier) Option {
	return func(a *Authenticator) {
		if v != nil {
			a.verifier = v
		}
	}
}

// WithLogger sets a custom logger for the authenticator.
func WithLogger(l *slog.Logger) Option {
	return func(a *Authenticator) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an Authenticator backed by users for lookups and gen for second factor checks.
func New(users UserFinder, gen *totp.Generator, opts ...Option) *Authenticator {
	a := &Authenticator{
		users:    users,
		totp:     gen,
		verifier: BcryptVerifier{},
		logger:   logger.Discard(),
	}
	if a.totp == nil {
		a.totp = totp.New()
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Login checks cred and, when every check passes, establishes a session through sess.
//
// Checks run in a fixed order and the first failing one decides the outcome: presence,
// username format, password format, user lookup, password hash, then the second factor
// when the user has one. Only a successful attempt touches sess.
//
// A non-nil error is returned together with status.Error for storage or session
// failures; every other outcome is a status code with a nil error.
func (a *Authenticator) Login(ctx context.Context, sess SessionEstablisher, cred Credential) (status.Code, error) {
	if cred.Username == "" || cred.Password == "" {
		return a.reject(ctx, status.MalformedInput), nil
	}
	if !validator.IsUsername(cred.Username) {
		return a.reject(ctx, status.UsernameValidationFailure), nil
	}
	if !validator.IsPassword(cred.Password) {
		return a.reject(ctx, status.PasswordValidationFailure), nil
	}

	user, err := a.users.FindUserByUsername(ctx, cred.Username, cred.Password)
	if errors.Is(err, ErrUserNotFound) {
		return a.reject(ctx, status.UnknownUser), nil
	}
	if err != nil {
		return status.Error, errors.Join(ErrUserLookupFailed, err)
	}

	if !a.verifier.Verify(user.PasswordHash, cred.Password) {
		return a.reject(ctx, status.IncorrectPassword), nil
	}

	if len(user.TwoFactorSecret) > 0 {
		if cred.TwoFactorCode == "" {
			return a.reject(ctx, status.TwoFactorCodeRequired), nil
		}
		if !validator.IsTwoFactorCode(cred.TwoFactorCode) {
			return a.reject(ctx, status.TwoFactorValidationFailure), nil
		}
		if !a.totp.Verify(user.TwoFactorSecret, cred.TwoFactorCode) {
			return a.reject(ctx, status.TwoFactorCodeIncorrect), nil
		}
	}

	if err := sess.Establish(ctx, user.ID, cred.Username); err != nil {
		return status.Error, errors.Join(ErrSessionNotEstablished, err)
	}

	a.logger.InfoContext(ctx, "user logged in",
		logger.Component("auth"),
		logger.UserID(user.ID),
	)

	return status.Success, nil
}

// reject records a failed attempt. Failures caused by user input are not system
// faults, so they are only visible at debug level.
func (a *Authenticator) reject(ctx context.Context, code status.Code) status.Code {
	a.logger.DebugContext(ctx, "login rejected",
		logger.Component("auth"),
		logger.Status(code),
	)
	return code
}
