// Package pg connects to PostgreSQL through pgx and applies goose migrations.
//
//	pool, err := pg.Connect(ctx, cfg)
//	db := pg.OpenDB(pool) // database/sql view used by the repositories
//	err = pg.Migrate(ctx, db, migrations.FS, ".", cfg, log)
//
// Healthcheck returns a readiness probe for the pool.
package pg
