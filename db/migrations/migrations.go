// Package migrations embeds the goose SQL migrations of the dashboard database.
package migrations

import "embed"

// Dir is the directory of FS holding the migration files.
const Dir = "."

//go:embed *.sql
var FS embed.FS
