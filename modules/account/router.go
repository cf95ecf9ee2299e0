package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mount attaches another module's handler under Pattern on the API router.
type Mount struct {
	Pattern string
	Handler http.Handler
}

// Router builds the API router: the login endpoint at /login plus every mount.
// Sessions are checked by the mounted handlers themselves, login stays public.
//
//	api := account.Router(account.NewLoginService(authn, sessions, log),
//		account.Mount{Pattern: "/dashboard", Handler: dash.Handle()},
//	)
//	r.Mount("/api", api)
func Router(login *LoginService, mounts ...Mount) chi.Router {
	r := chi.NewRouter()
	r.Mount("/login", login.Handle())
	for _, m := range mounts {
		r.Mount(m.Pattern, m.Handler)
	}
	return r
}
