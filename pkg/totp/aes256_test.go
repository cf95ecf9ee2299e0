package totp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/progressdash/pkg/totp"
)

func TestEncryptDecryptSecret(t *testing.T) {
	t.Parallel()

	const password = "Correct-Horse-42"
	secret := []byte("12345678901234567890")

	ciphertext, nonce, err := totp.EncryptSecret(secret, password)
	require.NoError(t, err)
	require.Len(t, nonce, totp.NonceSize)
	assert.NotEqual(t, secret, ciphertext)

	t.Run("right password", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, secret, totp.DecryptSecret(ciphertext, nonce, password))
	})

	t.Run("wrong password yields nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, totp.DecryptSecret(ciphertext, nonce, "Wrong-Horse-42"))
	})

	t.Run("tampered ciphertext yields nil", func(t *testing.T) {
		t.Parallel()
		tampered := append([]byte(nil), ciphertext...)
		tampered[0] ^= 0xff
		assert.Nil(t, totp.DecryptSecret(tampered, nonce, password))
	})

	t.Run("missing data yields nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, totp.DecryptSecret(nil, nonce, password))
		assert.Nil(t, totp.DecryptSecret(ciphertext, nil, password))
		assert.Nil(t, totp.DecryptSecret(ciphertext, nonce, ""))
	})
}

func TestEncryptSecret_FreshNonce(t *testing.T) {
	t.Parallel()

	secret := []byte("12345678901234567890")
	c1, n1, err := totp.EncryptSecret(secret, "Correct-Horse-42")
	require.NoError(t, err)
	c2, n2, err := totp.EncryptSecret(secret, "Correct-Horse-42")
	require.NoError(t, err)

	assert.NotEqual(t, n1, n2)
	assert.NotEqual(t, c1, c2)
}

func TestEncryptSecret_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := totp.EncryptSecret(nil, "Correct-Horse-42")
	require.ErrorIs(t, err, totp.ErrFailedToEncryptSecret)
	assert.ErrorIs(t, err, totp.ErrMissingSecret)

	_, _, err = totp.EncryptSecret([]byte("secret"), "")
	require.ErrorIs(t, err, totp.ErrFailedToEncryptSecret)
	assert.ErrorIs(t, err, totp.ErrMissingPassword)
}
