package ratingsdb

import (
	"context"

	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
)

// Repository defines the contract for rating persistence.
// The store is append-only: there is no update or delete.
//
// Error semantics:
//   - ErrInvalidEntry: the entry violates the store invariants and was not stored
//   - Other errors: infrastructure failures
type Repository interface {
	// Append stores one entry atomically.
	Append(ctx context.Context, entry ratingsdomain.Entry) error

	// ListByGuild returns a snapshot of the guild's entries in insertion order.
	ListByGuild(ctx context.Context, guildID string) ([]ratingsdomain.Entry, error)

	// Count returns the number of stored entries across all guilds.
	Count(ctx context.Context) (int, error)
}
