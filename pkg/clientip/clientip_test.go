package clientip_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/progressdash/pkg/clientip"
	"github.com/dmitrymomot/progressdash/pkg/logger"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		trusted    []string
		want       string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "203.0.113.7:51234",
			want:       "203.0.113.7",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "untrusted headers are ignored",
			remoteAddr: "10.0.0.2:80",
			headers:    map[string]string{"X-Real-IP": "198.51.100.1", "X-Forwarded-For": "198.51.100.2"},
			want:       "10.0.0.2",
		},
		{
			name:       "trusted real ip",
			remoteAddr: "10.0.0.2:80",
			headers:    map[string]string{"X-Real-IP": "198.51.100.1"},
			trusted:    []string{"X-Real-IP"},
			want:       "198.51.100.1",
		},
		{
			name:       "forwarded for takes the first valid entry",
			remoteAddr: "10.0.0.2:80",
			headers:    map[string]string{"X-Forwarded-For": "garbage, 198.51.100.2, 10.0.0.1"},
			trusted:    []string{"x-forwarded-for"},
			want:       "198.51.100.2",
		},
		{
			name:       "invalid trusted header falls through",
			remoteAddr: "10.0.0.2:80",
			headers:    map[string]string{"X-Real-IP": "not-an-ip"},
			trusted:    []string{"X-Real-IP"},
			want:       "10.0.0.2",
		},
		{
			name:       "unparseable remote addr",
			remoteAddr: "pipe",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.Resolve(r, tt.trusted...))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware("X-Real-IP")(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Real-IP", "198.51.100.9")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "198.51.100.9", got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
		logger.WithContextExtractors(clientip.LoggerExtractor()),
	)

	log.InfoContext(context.Background(), "no address")
	assert.NotContains(t, buf.String(), "client_ip")

	buf.Reset()
	log.InfoContext(clientip.WithContext(context.Background(), "203.0.113.7"), "with address")
	assert.Contains(t, buf.String(), "client_ip=203.0.113.7")
}
