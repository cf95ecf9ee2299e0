package handler_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/progressdash/handler"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		next      http.HandlerFunc
		wantCode  int
		wantLevel string
	}{
		{
			name:      "implicit ok",
			next:      func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) },
			wantCode:  http.StatusOK,
			wantLevel: "level=INFO",
		},
		{
			name:      "unauthorized",
			next:      func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusUnauthorized) },
			wantCode:  http.StatusUnauthorized,
			wantLevel: "level=INFO",
		},
		{
			name:      "server error",
			next:      func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			wantCode:  http.StatusInternalServerError,
			wantLevel: "level=ERROR",
		},
		{
			name:      "nothing written",
			next:      func(w http.ResponseWriter, r *http.Request) {},
			wantCode:  http.StatusOK,
			wantLevel: "level=INFO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			log := slog.New(slog.NewTextHandler(&logs, nil))

			rec := httptest.NewRecorder()
			handler.RequestLogger(log)(tt.next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			out := logs.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, "http.method=GET")
			assert.Contains(t, out, "http.path=/api/dashboard")
			assert.Contains(t, out, "http.status="+itoa(tt.wantCode))
			assert.Contains(t, out, "duration=")
		})
	}
}
