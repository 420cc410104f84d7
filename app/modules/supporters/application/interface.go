package supportersservice

import (
	"context"

	supportersdomain "github.com/XdrBOBX/rating-widget/app/modules/supporters/domain"
)

// Service defines the supporter leaderboard operations.
type Service interface {
	// TopSupporters returns the guild's leaderboard with limit clamped to
	// [1,20], or the fallback list when the guild has no supporters.
	TopSupporters(ctx context.Context, guildID string, limit int) ([]supportersdomain.Ranked, error)

	// UpsertSupporter records a supporter in the directory.
	UpsertSupporter(ctx context.Context, supporter supportersdomain.Supporter) error
}
