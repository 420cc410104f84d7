package ratingsdb

import (
	"context"
	"fmt"

	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a Postgres-backed rating repository.
func NewRepository(db bun.IDB) *Impl {
	return &Impl{db: db}
}

// Append inserts one row. A single INSERT is atomic for concurrent readers.
func (r *Impl) Append(ctx context.Context, entry ratingsdomain.Entry) error {
	if err := checkInvariants(entry); err != nil {
		return err
	}
	if _, err := r.db.NewInsert().Model(toModel(entry)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert rating entry: %w", err)
	}
	return nil
}

// ListByGuild returns the guild's entries ordered by insertion.
func (r *Impl) ListByGuild(ctx context.Context, guildID string) ([]ratingsdomain.Entry, error) {
	var rows []RatingEntry
	err := r.db.NewSelect().
		Model(&rows).
		Where("guild_id = ?", guildID).
		OrderExpr("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rating entries: %w", err)
	}

	entries := make([]ratingsdomain.Entry, len(rows))
	for i := range rows {
		entries[i] = rows[i].toDomain()
	}
	return entries, nil
}

// Count returns the number of stored entries.
func (r *Impl) Count(ctx context.Context) (int, error) {
	n, err := r.db.NewSelect().Model((*RatingEntry)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count rating entries: %w", err)
	}
	return n, nil
}

var _ Repository = (*Impl)(nil)
