package pg

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNoDSN       = errors.New("pg: PG_CONN_URL is empty")
	ErrInvalidDSN  = errors.New("pg: invalid connection string")
	ErrConnect     = errors.New("pg: database unreachable")
	ErrUnavailable = errors.New("pg: ping failed")

	ErrMigrate      = errors.New("pg: migrations failed")
	ErrNoMigrations = errors.New("pg: nil migrations filesystem")
)

// IsNotFoundError reports whether err wraps pgx.ErrNoRows or sql.ErrNoRows.
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
