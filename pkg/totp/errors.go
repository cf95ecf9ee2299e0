package totp

import "errors"

var (
	ErrFailedToEncryptSecret     = errors.New("failed to encrypt TOTP secret")
	ErrFailedToGenerateSecretKey = errors.New("failed to generate TOTP secret key")
	ErrFailedToDeriveKey         = errors.New("failed to derive TOTP secret encryption key")
	ErrMissingSecret             = errors.New("missing secret")
	ErrMissingPassword           = errors.New("missing password")
)
