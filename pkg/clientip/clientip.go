package clientip

import (
	"net"
	"net/http"
	"strings"
)

type Config struct {
	TrustedHeaders []string `env:"CLIENTIP_TRUSTED_HEADERS" envSeparator:","`
}

// Resolve returns the client address of r. The first trusted header holding a
// valid address wins; X-Forwarded-For contributes its left-most valid entry.
// It returns an empty string when no address can be parsed.
func Resolve(r *http.Request, trusted ...string) string {
	for _, name := range trusted {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		if http.CanonicalHeaderKey(name) == "X-Forwarded-For" {
			for part := range strings.SplitSeq(value, ",") {
				if ip := normalize(part); ip != "" {
					return ip
				}
			}
			continue
		}
		if ip := normalize(value); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
