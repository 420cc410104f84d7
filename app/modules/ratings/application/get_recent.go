package ratingsservice

import (
	"context"

	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
	"github.com/XdrBOBX/rating-widget/app/shared/operation"
)

// GetRecent returns the guild's newest entries with authors projected.
// Raw user ids never leave this method.
func (s *RatingService) GetRecent(ctx context.Context, guildID string, limit int) ([]ratingsdomain.FeedItem, error) {
	return operation.Run(ctx, s.telemetry, "GetRecent", guildID,
		func(ctx context.Context) ([]ratingsdomain.FeedItem, error) {
			items := []ratingsdomain.FeedItem{}
			if guildID == "" {
				return items, nil
			}

			entries, err := s.repo.ListByGuild(ctx, guildID)
			if err != nil {
				return nil, err
			}

			for _, e := range ratingsdomain.SelectRecent(guildID, entries, limit) {
				item := ratingsdomain.FeedItem{
					Category:  e.Category,
					Score:     e.Score,
					Comment:   e.Comment,
					CreatedAt: e.CreatedAt,
				}
				if e.UserID != nil {
					author := s.authors.ResolveAuthor(ctx, *e.UserID)
					item.Author = &author
				}
				items = append(items, item)
			}
			return items, nil
		})
}
