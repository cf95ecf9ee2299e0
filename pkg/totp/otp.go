package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/progressdash/pkg/base32"
)

const (
	Algorithm     = "SHA1"                         // HMAC-SHA1 (RFC 6238 standard)
	Digits        = 6                              // Standard 6-digit codes
	Period        = 30 * time.Second               // RFC 6238 time step
	SkewSteps     = 1                              // Steps accepted on each side of the current one
	SecretSize    = 20                             // 160-bit secret (RFC 4226 recommendation)
	DefaultIssuer = "Degree Progression Dashboard" // Issuer label used when none is configured
)

// Generator computes time-based codes and enrollment URIs.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	issuer string
	now    func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithIssuer sets the issuer label embedded into enrollment URIs.
// Empty values are ignored.
func WithIssuer(issuer string) Option {
	return func(g *Generator) {
		if issuer != "" {
			g.issuer = issuer
		}
	}
}

// WithClock replaces the time source, mostly useful in tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// New returns a Generator with the RFC 6238 defaults.
func New(opts ...Option) *Generator {
	g := &Generator{
		issuer: DefaultIssuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Issuer returns the configured issuer label.
func (g *Generator) Issuer() string {
	return g.issuer
}

// EnrollmentURI builds an otpauth URI for the given secret following the Key Uri Format:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
//
// The issuer is percent-encoded, the account name is embedded as given.
func (g *Generator) EnrollmentURI(secret []byte, accountName string) string {
	issuer := escapeComponent(g.issuer)

	return fmt.Sprintf("otpauth://totp/%s:%s?secret=%s&issuer=%s&algorithm=%s&digits=%d&period=%d",
		issuer,
		accountName,
		base32.Encode(secret),
		issuer,
		Algorithm,
		Digits,
		int64(Period/time.Second),
	)
}

// Code returns the code for the time step containing now minus skew.
// A positive skew yields past codes, a negative one future codes.
func (g *Generator) Code(secret []byte, skew time.Duration) string {
	step := int64(Period / time.Second)
	t := g.now().Unix() - int64(skew/time.Second)

	counter := t / step
	if t < 0 && t%step != 0 {
		counter-- // floor, not truncation
	}

	return HOTP(secret, uint64(counter), Digits)
}

// Window returns the codes accepted at the current moment, oldest skew first:
// skew -Period, 0 and +Period.
func (g *Generator) Window(secret []byte) []string {
	codes := make([]string, 0, 2*SkewSteps+1)
	for i := -SkewSteps; i <= SkewSteps; i++ {
		codes = append(codes, g.Code(secret, time.Duration(i)*Period))
	}
	return codes
}

// Verify reports whether code matches one of the codes in the current window.
// Space characters inside code are ignored.
func (g *Generator) Verify(secret []byte, code string) bool {
	code = strings.ReplaceAll(code, " ", "")
	if len(secret) == 0 || len(code) != Digits {
		return false
	}

	// Every candidate is compared so timing does not reveal which step matched.
	matched := 0
	for _, candidate := range g.Window(secret) {
		matched |= subtle.ConstantTimeCompare([]byte(candidate), []byte(code))
	}
	return matched == 1
}

// HOTP implements the RFC 4226 HMAC-based One-Time Password algorithm with HMAC-SHA1.
// The result is left-padded with zeros to digits characters.
func HOTP(key []byte, counter uint64, digits int) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// Dynamic truncation: low nibble of the last byte selects a 31-bit window.
	offset := sum[len(sum)-1] & 0x0f
	value := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	mod := uint64(1)
	for range digits {
		mod *= 10
	}

	return fmt.Sprintf("%0*d", digits, uint64(value)%mod)
}

// GenerateSecret returns a new random secret of SecretSize bytes.
func GenerateSecret() ([]byte, error) {
	secret := make([]byte, SecretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, errors.Join(ErrFailedToGenerateSecretKey, err)
	}
	return secret, nil
}

// escapeComponent percent-encodes s per RFC 3986, so spaces become %20 rather than '+'.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
