// Package migrations embeds the goose migrations for every supported store.
// Each dialect lives in its own directory.
package migrations

import "embed"

// Directories inside FS, one per dialect.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
