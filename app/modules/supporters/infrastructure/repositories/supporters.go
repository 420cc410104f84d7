package supportersdb

import (
	"context"
	"fmt"

	supportersdomain "github.com/XdrBOBX/rating-widget/app/modules/supporters/domain"
	"github.com/uptrace/bun"
)

// Impl implements Directory using Bun ORM.
type Impl struct {
	db bun.IDB
}

func NewDirectory(db bun.IDB) *Impl {
	return &Impl{db: db}
}

func (d *Impl) ListByGuild(ctx context.Context, guildID string) ([]supportersdomain.Supporter, error) {
	var rows []SupporterRecord
	err := d.db.NewSelect().
		Model(&rows).
		Where("guild_id = ?", guildID).
		OrderExpr("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list supporters: %w", err)
	}

	out := make([]supportersdomain.Supporter, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Upsert relies on the (guild_id, supporter_id) unique constraint. The serial
// id is left untouched on conflict, so ordering stays by first insert.
func (d *Impl) Upsert(ctx context.Context, s supportersdomain.Supporter) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSupporter, err)
	}

	_, err := d.db.NewInsert().
		Model(toRecord(s)).
		On("CONFLICT (guild_id, supporter_id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("avatar_url = EXCLUDED.avatar_url").
		Set("points = EXCLUDED.points").
		Set("rank = EXCLUDED.rank").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert supporter: %w", err)
	}
	return nil
}

var _ Directory = (*Impl)(nil)
