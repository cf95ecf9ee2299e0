package clientip

import "net/http"

// Middleware stores the address returned by Resolve in the request context.
func Middleware(trusted ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), Resolve(r, trusted...))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
