package supportersmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating supporters table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS supporters (
				id BIGSERIAL PRIMARY KEY,
				guild_id TEXT NOT NULL,
				supporter_id TEXT NOT NULL,
				name TEXT NOT NULL DEFAULT '',
				avatar_url TEXT NOT NULL DEFAULT '',
				points DOUBLE PRECISION NOT NULL,
				rank INTEGER NOT NULL DEFAULT 0 CHECK (rank >= 0),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				CONSTRAINT supporters_guild_supporter UNIQUE (guild_id, supporter_id)
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create supporters table: %w", err)
		}

		fmt.Println("supporters table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping supporters table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS supporters;`); err != nil {
			return fmt.Errorf("failed to drop supporters table: %w", err)
		}
		return nil
	})
}
