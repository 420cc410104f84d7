package ratingsservice

import (
	"context"

	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
)

// Service defines the rating operations exposed to transports.
type Service interface {
	// SubmitRating validates and stores one rating. Rejections are returned
	// as *ratingsdomain.ValidationError and nothing is stored.
	SubmitRating(ctx context.Context, candidate ratingsdomain.Candidate) (ratingsdomain.Entry, error)

	// GetSummary aggregates both categories of a guild. An empty guild id
	// yields empty stats.
	GetSummary(ctx context.Context, guildID string) (ratingsdomain.Summary, error)

	// GetRecent returns the newest entries of a guild, limit clamped to [1,100].
	GetRecent(ctx context.Context, guildID string, limit int) ([]ratingsdomain.FeedItem, error)
}

// AuthorResolver projects an identity into its public author form.
type AuthorResolver interface {
	ResolveAuthor(ctx context.Context, userID string) ratingsdomain.Author
}

// PlaceholderResolver is used when no identity service is configured.
type PlaceholderResolver struct{}

func (PlaceholderResolver) ResolveAuthor(_ context.Context, userID string) ratingsdomain.Author {
	return ratingsdomain.PlaceholderAuthor(userID)
}
