package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrymomot/progressdash/pkg/auth"
	"github.com/dmitrymomot/progressdash/pkg/pg"
	"github.com/dmitrymomot/progressdash/pkg/totp"
)

var _ auth.UserFinder = (*Users)(nil)

const findUserQuery = `SELECT id, password_hash, two_factor_secret, two_factor_nonce
FROM users
WHERE username = $1
LIMIT 1`

// Users resolves login identities.
type Users struct {
	db *sql.DB
}

func NewUsers(db *sql.DB) *Users {
	return &Users{db: db}
}

// FindUserByUsername loads the user and decrypts its TOTP secret with the submitted
// password. A wrong password leaves TwoFactorSecret empty; the caller rejects it at
// the password hash check that follows.
func (u *Users) FindUserByUsername(ctx context.Context, username, password string) (auth.UserRecord, error) {
	var (
		rec    auth.UserRecord
		secret []byte
		nonce  []byte
	)

	err := u.db.QueryRowContext(ctx, findUserQuery, username).Scan(&rec.ID, &rec.PasswordHash, &secret, &nonce)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return auth.UserRecord{}, auth.ErrUserNotFound
		}
		return auth.UserRecord{}, errors.Join(auth.ErrUserLookupFailed, err)
	}

	if len(secret) > 0 && len(nonce) > 0 {
		rec.TwoFactorSecret = totp.DecryptSecret(secret, nonce, password)
	}

	return rec, nil
}
