// filepath: internal/repository/migration.go
package repository

import (
	"fmt"

	"hcsl_site/internal/db/migrations"
	"hcsl_site/internal/logging"

	"github.com/pressly/goose/v3"
)

// configureGoose points goose at the embedded migration files.
func configureGoose() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// EnsureSchemaBootstrapped migrates a brand-new database to the latest
// version. A database that already carries a goose version table is left
// alone so that upgrades stay an explicit operation.
func (s *Repository) EnsureSchemaBootstrapped() error {
	var name string
	err := s.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='goose_db_version'").Scan(&name)
	if err == nil {
		logging.Log.Debug("Database already initialized, skipping bootstrap")
		return nil
	}

	logging.Log.Info("Fresh database detected, applying all migrations")
	return s.MigrateUp()
}

// ValidateSchema verifies the database is at the latest migration version.
func (s *Repository) ValidateSchema() error {
	if err := configureGoose(); err != nil {
		return err
	}

	current, err := goose.GetDBVersion(s.DB)
	if err != nil {
		return fmt.Errorf("could not read schema version: %w", err)
	}

	latest, err := latestMigrationVersion()
	if err != nil {
		return err
	}

	if current < latest {
		return fmt.Errorf("database schema is outdated: at version %d, want %d (run 'migrate up')", current, latest)
	}
	return nil
}

// MigrateUp applies all pending migrations. Each migration runs inside its
// own transaction, so the content_items rebuild in version 3 is all-or-nothing.
func (s *Repository) MigrateUp() error {
	if err := configureGoose(); err != nil {
		return err
	}
	return goose.Up(s.DB, ".")
}

// MigrateDown rolls back the most recent migration.
func (s *Repository) MigrateDown() error {
	if err := configureGoose(); err != nil {
		return err
	}
	return goose.Down(s.DB, ".")
}

// MigrateStatus prints the migration status for the current database.
func (s *Repository) MigrateStatus() error {
	if err := configureGoose(); err != nil {
		return err
	}
	return goose.Status(s.DB, ".")
}

// MigrateUpTo migrates to a specific version. Used by tests to stage a
// database at a historical schema.
func (s *Repository) MigrateUpTo(version int64) error {
	if err := configureGoose(); err != nil {
		return err
	}
	return goose.UpTo(s.DB, ".", version)
}

func latestMigrationVersion() (int64, error) {
	migs, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	if err != nil {
		return 0, fmt.Errorf("could not collect migrations: %w", err)
	}
	last, err := migs.Last()
	if err != nil {
		return 0, fmt.Errorf("no migrations found: %w", err)
	}
	return last.Version, nil
}
