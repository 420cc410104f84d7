package ratingsmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating rating_entries table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS rating_entries (
				id BIGSERIAL PRIMARY KEY,
				public_id UUID NOT NULL UNIQUE,
				guild_id TEXT NOT NULL,
				user_id TEXT NULL,
				category TEXT NOT NULL CHECK (category IN ('game', 'support')),
				score SMALLINT NOT NULL CHECK (score BETWEEN 1 AND 5),
				comment TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create rating_entries table: %w", err)
		}

		if _, err := db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_rating_entries_guild_id ON rating_entries (guild_id, id)`); err != nil {
			return fmt.Errorf("failed to create rating_entries guild index: %w", err)
		}

		fmt.Println("rating_entries table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping rating_entries table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS rating_entries;`); err != nil {
			return fmt.Errorf("failed to drop rating_entries table: %w", err)
		}
		return nil
	})
}
