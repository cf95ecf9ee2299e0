// Package postgres implements the storage collaborators of the auth and dashboard
// packages on database/sql over the pgx driver (see pg.OpenDB).
//
// All queries use $n placeholders. The schema lives in db/migrations.
package postgres
