package app

import (
	"context"
	"fmt"

	ratingsmigrations "github.com/XdrBOBX/rating-widget/app/modules/ratings/infrastructure/repositories/migrations"
	supportersmigrations "github.com/XdrBOBX/rating-widget/app/modules/supporters/infrastructure/repositories/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// ModuleMigrator is a bun migrator bound to one module's migration set.
type ModuleMigrator struct {
	Module string
	*migrate.Migrator
}

// Migrators returns one migrator per module in a fixed order. Each module
// tracks its applied migrations in its own table.
func Migrators(db *bun.DB) []ModuleMigrator {
	newMigrator := func(module string, m *migrate.Migrations) ModuleMigrator {
		return ModuleMigrator{
			Module: module,
			Migrator: migrate.NewMigrator(db, m,
				migrate.WithTableName("bun_migrations_"+module),
				migrate.WithLocksTableName("bun_migration_locks_"+module),
			),
		}
	}
	return []ModuleMigrator{
		newMigrator("ratings", ratingsmigrations.Migrations),
		newMigrator("supporters", supportersmigrations.Migrations),
	}
}

// MigrateAll creates the migration tables if needed and applies every
// pending migration.
func MigrateAll(ctx context.Context, db *bun.DB) error {
	for _, m := range Migrators(db) {
		if err := m.Init(ctx); err != nil {
			return fmt.Errorf("failed to init %s migrations: %w", m.Module, err)
		}
		if _, err := m.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", m.Module, err)
		}
	}
	return nil
}
