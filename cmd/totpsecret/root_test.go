package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/progressdash/pkg/totp"
)

const testPassword = "Correct!Horse42"

func execute(t *testing.T, args ...string) (map[string]string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	fields := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if ok {
			fields[key] = strings.TrimSpace(value)
		}
	}
	return fields, err
}

func unhex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.TrimPrefix(s, `\x`))
	require.NoError(t, err)
	return b
}

func TestGenerate_WithGivenSecret(t *testing.T) {
	t.Parallel()

	qr := filepath.Join(t.TempDir(), "alice.png")
	fields, err := execute(t,
		"--user", "alice",
		"--password", testPassword,
		"--secret", "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ",
		"--qr", qr,
		"--cost", "4",
	)
	require.NoError(t, err)

	assert.Equal(t, "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ", fields["secret"])
	assert.Contains(t, fields["enrollment uri"], "otpauth://totp/Degree%20Progression%20Dashboard:alice?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ")

	secret := totp.DecryptSecret(unhex(t, fields["two_factor_secret"]), unhex(t, fields["two_factor_nonce"]), testPassword)
	assert.Equal(t, []byte("12345678901234567890"), secret)

	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(fields["password_hash"]), []byte(testPassword)))

	info, err := os.Stat(qr)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestGenerate_RandomSecret(t *testing.T) {
	t.Parallel()

	first, err := execute(t, "-u", "alice", "-p", testPassword, "--cost", "4")
	require.NoError(t, err)
	second, err := execute(t, "-u", "alice", "-p", testPassword, "--cost", "4")
	require.NoError(t, err)

	assert.Len(t, first["secret"], 32)
	assert.NotEqual(t, first["secret"], second["secret"])
	assert.NotContains(t, first, "qr code")
}

func TestGenerate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"short username", []string{"-u", "al", "-p", testPassword}, errInvalidUsername},
		{"username with dash", []string{"-u", "al-ice", "-p", testPassword}, errInvalidUsername},
		{"weak password", []string{"-u", "alice", "-p", "password"}, errInvalidPassword},
		{"bad secret", []string{"-u", "alice", "-p", testPassword, "-s", "not base32!"}, errInvalidSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGenerate_RequiresUserAndPassword(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "--user", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}
