package supportersdb

import (
	"context"

	supportersdomain "github.com/XdrBOBX/rating-widget/app/modules/supporters/domain"
)

// Directory defines the contract for supporter persistence. The core only
// reads it; Upsert serves the feed that populates it.
type Directory interface {
	// ListByGuild returns the guild's supporters in insertion order.
	ListByGuild(ctx context.Context, guildID string) ([]supportersdomain.Supporter, error)

	// Upsert inserts a record or replaces the one with the same guild and id
	// in place, keeping its original insertion position.
	Upsert(ctx context.Context, supporter supportersdomain.Supporter) error
}
