package cookie

import (
	"net/http"
	"time"
)

// Options are the attributes written with a cookie.
type Options struct {
	Path     string
	Domain   string
	MaxAge   int // seconds; 0 omits Max-Age, giving a browser-session cookie
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

// Option overrides one attribute of the Manager defaults for a single call.
type Option func(*Options)

func WithPath(path string) Option { return func(o *Options) { o.Path = path } }

// WithDomain scopes the cookie to domain and its subdomains. Empty means host-only.
func WithDomain(domain string) Option { return func(o *Options) { o.Domain = domain } }

func WithMaxAge(seconds int) Option { return func(o *Options) { o.MaxAge = seconds } }

func WithSecure(secure bool) Option { return func(o *Options) { o.Secure = secure } }

func WithHTTPOnly(httpOnly bool) Option { return func(o *Options) { o.HttpOnly = httpOnly } }

func WithSameSite(mode http.SameSite) Option { return func(o *Options) { o.SameSite = mode } }

// with returns a copy of o with opts applied.
func (o Options) with(opts []Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   o.MaxAge,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	}
}

// expired returns a cookie that makes the browser drop name.
func (o Options) expired(name string) *http.Cookie {
	c := o.cookie(name, "")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}
