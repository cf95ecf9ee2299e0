package handler

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/progressdash/pkg/session"
)

// Context is the per-request value handlers receive. It is the request's own
// context.Context, so it can be passed straight to storage and logging calls.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// Session returns the session put in place by session.Manager.RequireLogin.
	Session() (*session.Session, bool)
}

func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &requestContext{Context: r.Context(), w: w, r: r}
}

type requestContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func (c *requestContext) Request() *http.Request              { return c.r }
func (c *requestContext) ResponseWriter() http.ResponseWriter { return c.w }

func (c *requestContext) Session() (*session.Session, bool) {
	return session.FromContext(c.Context)
}
