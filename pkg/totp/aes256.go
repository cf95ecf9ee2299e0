package totp

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	AESKeySize = 32 // AES-256
	NonceSize  = 12 // GCM standard nonce size

	keyInfo = "progressdash totp secret"
)

// EncryptSecret seals a TOTP secret with AES-256-GCM under a key derived from the
// user's plaintext password. The random nonce doubles as the HKDF salt and must be
// stored next to the ciphertext.
func EncryptSecret(secret []byte, password string) (ciphertext, nonce []byte, err error) {
	if len(secret) == 0 {
		return nil, nil, errors.Join(ErrFailedToEncryptSecret, ErrMissingSecret)
	}
	if password == "" {
		return nil, nil, errors.Join(ErrFailedToEncryptSecret, ErrMissingPassword)
	}

	nonce = make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, errors.Join(ErrFailedToEncryptSecret, err)
	}

	aead, err := newAEAD(password, nonce)
	if err != nil {
		return nil, nil, errors.Join(ErrFailedToEncryptSecret, err)
	}

	return aead.Seal(nil, nonce, secret, nil), nonce, nil
}

// DecryptSecret opens a secret sealed by EncryptSecret.
// It never fails loudly: a wrong password, missing data or tampered ciphertext all
// yield nil, which callers treat as "no usable secret".
func DecryptSecret(ciphertext, nonce []byte, password string) []byte {
	if len(ciphertext) == 0 || len(nonce) != NonceSize || password == "" {
		return nil
	}

	aead, err := newAEAD(password, nonce)
	if err != nil {
		return nil
	}

	secret, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil
	}
	return secret
}

// deriveKey stretches the password into an AES-256 key with HKDF-SHA512.
func deriveKey(password string, salt []byte) ([]byte, error) {
	key := make([]byte, AESKeySize)
	r := hkdf.New(sha512.New, []byte(password), salt, []byte(keyInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrFailedToDeriveKey, err)
	}
	return key, nil
}

func newAEAD(password string, salt []byte) (cipher.AEAD, error) {
	key, err := deriveKey(password, salt)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
