package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"

	"motel-admin-backend/migrations"
)

func newMigrator(dsn string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("error loading embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// MigrateUp applies all pending migrations.
func MigrateUp(dsn string) error {
	mig, err := newMigrator(dsn)
	if err != nil {
		return err
	}
	defer mig.Close()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations: %w", err)
	}

	log.Info().Msg("database migrations completed")
	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(dsn string) error {
	mig, err := newMigrator(dsn)
	if err != nil {
		return err
	}
	defer mig.Close()

	if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error rolling back migration: %w", err)
	}

	log.Info().Msg("database migration rolled back")
	return nil
}

// MigrateDrop rolls back every migration.
func MigrateDrop(dsn string) error {
	mig, err := newMigrator(dsn)
	if err != nil {
		return err
	}
	defer mig.Close()

	if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error rolling back migrations: %w", err)
	}

	log.Info().Msg("database migrations rolled back")
	return nil
}
