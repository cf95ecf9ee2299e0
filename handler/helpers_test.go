package handler_test

import (
	"context"
	"net/http"
	"strconv"
)

func contextWithValue(r *http.Request, key, val any) context.Context {
	return context.WithValue(r.Context(), key, val)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
