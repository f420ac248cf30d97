package postgrestore

import (
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrations embed.FS

func migrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       "migrations",
	}
}

// Migrate applies every pending migration. The dialect follows the driver
// db was opened with, so the same schema serves postgres and sqlite3.
func Migrate(db *sqlx.DB) error {
	n, err := migrate.Exec(db.DB, db.DriverName(), migrationSource(), migrate.Up)
	if err != nil {
		return fmt.Errorf("cannot migrate %s: applied %d: %w", db.DriverName(), n, err)
	}

	return nil
}

// Rollback reverts every applied migration.
func Rollback(db *sqlx.DB) error {
	if _, err := migrate.Exec(db.DB, db.DriverName(), migrationSource(), migrate.Down); err != nil {
		return fmt.Errorf("cannot rollback %s: %w", db.DriverName(), err)
	}

	return nil
}
