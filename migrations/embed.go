// Package migrations embeds the SQL that creates and seeds the role fixture
// database, so the binary never needs the files on disk.
package migrations

import (
	"embed"

	"github.com/nerrad567/featuregate/internal/infrastructure/database"
)

//go:embed *.sql
var migrationsFS embed.FS

func init() {
	database.MigrationsFS = migrationsFS
	database.MigrationsDir = "."
}
