// Package migrations embeds the goose migrations for each SQL dialect.
package migrations

import "embed"

// FS holds sqlite/*.sql and postgres/*.sql
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

// Migration directories inside FS
const (
	DirSQLite   = "sqlite"
	DirPostgres = "postgres"
)
