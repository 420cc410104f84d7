package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/XdrBOBX/rating-widget/app"
	"github.com/XdrBOBX/rating-widget/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/urfave/cli/v2"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Postgres.DSN == "" {
		log.Fatal("postgres.dsn (DATABASE_URL) is required for migrations")
	}

	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(pgdb, pgdialect.New())
	defer db.Close()

	cliApp := &cli.App{
		Name:  "bun",
		Usage: "manage rating-widget database tables",
		Commands: []*cli.Command{
			newMigrateCommand(app.Migrators(db)),
		},
	}

	// flag.Parse consumed -config; the rest belongs to the CLI.
	if err := cliApp.Run(append([]string{os.Args[0]}, flag.Args()...)); err != nil {
		log.Fatal(err)
	}
}

func newMigrateCommand(migrators []app.ModuleMigrator) *cli.Command {
	find := func(module string) (app.ModuleMigrator, error) {
		for _, m := range migrators {
			if m.Module == module {
				return m, nil
			}
		}
		return app.ModuleMigrator{}, fmt.Errorf("invalid module name: %q", module)
	}

	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: func(c *cli.Context) error {
					for _, m := range migrators {
						fmt.Printf("Initializing migrations for module: %s\n", m.Module)
						if err := m.Init(c.Context); err != nil {
							return fmt.Errorf("init %s: %w", m.Module, err)
						}
					}
					return nil
				},
			},
			{
				Name:  "migrate",
				Usage: "apply pending migrations",
				Action: func(c *cli.Context) error {
					for _, m := range migrators {
						if err := m.Lock(c.Context); err != nil {
							return err
						}
						group, err := m.Migrate(c.Context)
						_ = m.Unlock(c.Context)
						if err != nil {
							return fmt.Errorf("migrate %s: %w", m.Module, err)
						}
						if group.IsZero() {
							fmt.Printf("No new migrations to run for module: %s\n", m.Module)
						} else {
							fmt.Printf("Migrated module: %s to %s\n", m.Module, group)
						}
					}
					return nil
				},
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group of every module",
				Action: func(c *cli.Context) error {
					// Reverse order so dependants roll back first.
					for i := len(migrators) - 1; i >= 0; i-- {
						m := migrators[i]
						group, err := m.Rollback(c.Context)
						if err != nil {
							return fmt.Errorf("rollback %s: %w", m.Module, err)
						}
						if group.IsZero() {
							fmt.Printf("No groups to roll back for module: %s\n", m.Module)
						} else {
							fmt.Printf("Rolled back module: %s from %s\n", m.Module, group)
						}
					}
					return nil
				},
			},
			{
				Name:      "create_go",
				Usage:     "create a Go migration",
				ArgsUsage: "<module> <name...>",
				Action: func(c *cli.Context) error {
					m, err := find(c.Args().First())
					if err != nil {
						return err
					}
					mf, err := m.CreateGoMigration(c.Context, strings.Join(c.Args().Tail(), "_"))
					if err != nil {
						return err
					}
					fmt.Printf("Created migration for module %s: %s (%s)\n", m.Module, mf.Name, mf.Path)
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: func(c *cli.Context) error {
					for _, m := range migrators {
						ms, err := m.MigrationsWithStatus(c.Context)
						if err != nil {
							return fmt.Errorf("status %s: %w", m.Module, err)
						}
						fmt.Printf("Migrations for module: %s\n", m.Module)
						fmt.Printf("  Applied: %s\n", ms.Applied())
						fmt.Printf("  Unapplied: %s\n", ms.Unapplied())
					}
					return nil
				},
			},
		},
	}
}
