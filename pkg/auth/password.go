package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// BcryptVerifier verifies bcrypt hashes. Hashes with the $2a$, $2b$ and $2y$ prefixes
// are all accepted.
type BcryptVerifier struct{}

// Verify reports whether password matches hash.
func (BcryptVerifier) Verify(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashPassword returns a bcrypt hash of password. A cost of 0 selects bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errors.Join(ErrPasswordHashFailed, err)
	}
	return string(hash), nil
}
