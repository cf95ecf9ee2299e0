package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/progressdash/handler"
	"github.com/dmitrymomot/progressdash/pkg/binder"
	"github.com/dmitrymomot/progressdash/pkg/status"
)

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      []handler.ErrorHandlerOption
		err       error
		wantCode  int
		wantBody  string
		wantLevel string
	}{
		{
			name:      "infrastructure error",
			err:       errors.New("pq: connection refused"),
			wantCode:  http.StatusInternalServerError,
			wantBody:  `{"status":-1,"data":null}`,
			wantLevel: "level=ERROR",
		},
		{
			name:      "binding error defaults to malformed input",
			err:       fmt.Errorf("%w: bad", binder.ErrInvalidForm),
			wantCode:  http.StatusOK,
			wantBody:  `{"status":1,"data":null}`,
			wantLevel: "level=WARN",
		},
		{
			name:      "binding error with override",
			opts:      []handler.ErrorHandlerOption{handler.WithBindStatus(status.Error, http.StatusBadRequest)},
			err:       fmt.Errorf("%w: json", binder.ErrUnsupportedMediaType),
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"status":-1,"data":null}`,
			wantLevel: "level=WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
			eh := handler.NewErrorHandler(log, tt.opts...)

			rec := httptest.NewRecorder()
			eh(handler.NewContext(rec, httptest.NewRequest(http.MethodPost, "/api/login", nil)), tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), tt.err.Error())
			assert.Contains(t, logs.String(), tt.wantLevel)
			assert.Contains(t, logs.String(), "path=/api/login")
		})
	}
}

func TestIsBindingError(t *testing.T) {
	t.Parallel()

	assert.True(t, handler.IsBindingError(binder.ErrMissingContentType))
	assert.True(t, handler.IsBindingError(fmt.Errorf("wrap: %w", binder.ErrInvalidQuery)))
	assert.False(t, handler.IsBindingError(errors.New("other")))
	assert.False(t, handler.IsBindingError(nil))
}
