package handler

import (
	"net/http"

	"github.com/dmitrymomot/progressdash/pkg/status"
)

// Denied answers a request refused by an authentication gate: UserNotLoggedIn with HTTP
// 401, or the Error envelope when the gate itself failed (err != nil). Its signature
// matches session.WithDeniedHandler.
func Denied(w http.ResponseWriter, r *http.Request, err error) {
	code := status.UserNotLoggedIn
	if err != nil {
		code = status.Error
	}
	_ = Status(code, nil).Render(w, r)
}
