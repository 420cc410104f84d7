package ratingsservice

import (
	"context"

	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
	"github.com/XdrBOBX/rating-widget/app/shared/operation"
)

// GetSummary aggregates the guild's entries.
func (s *RatingService) GetSummary(ctx context.Context, guildID string) (ratingsdomain.Summary, error) {
	return operation.Run(ctx, s.telemetry, "GetSummary", guildID,
		func(ctx context.Context) (ratingsdomain.Summary, error) {
			if guildID == "" {
				return ratingsdomain.Summary{}, nil
			}
			entries, err := s.repo.ListByGuild(ctx, guildID)
			if err != nil {
				return ratingsdomain.Summary{}, err
			}
			return ratingsdomain.Summarize(guildID, entries), nil
		})
}
