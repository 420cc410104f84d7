package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/XdrBOBX/rating-widget/app"
	"github.com/XdrBOBX/rating-widget/integration_tests/containers"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// appTables are truncated between tests.
var appTables = []string{"rating_entries", "supporters"}

// PostgresEnv is a migrated database in a throwaway container.
type PostgresEnv struct {
	Container *postgres.PostgresContainer
	DB        *bun.DB
}

// NewPostgresEnv starts Postgres, connects through the pgx stdlib driver and
// applies every module migration.
func NewPostgresEnv(ctx context.Context) (*PostgresEnv, error) {
	container, connStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db := bun.NewDB(sqlDB, pgdialect.New())

	if err := app.MigrateAll(ctx, db); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("All migrations ran successfully")

	return &PostgresEnv{Container: container, DB: db}, nil
}

// Reset empties every application table and restarts the id sequences.
func (e *PostgresEnv) Reset(ctx context.Context) error {
	for _, table := range appTables {
		if _, err := e.DB.ExecContext(ctx, "TRUNCATE TABLE "+table+" RESTART IDENTITY"); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

// Close disconnects and terminates the container.
func (e *PostgresEnv) Close(ctx context.Context) {
	if err := e.DB.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
	if err := e.Container.Terminate(ctx); err != nil {
		log.Printf("Failed to terminate postgres container: %v", err)
	}
}
