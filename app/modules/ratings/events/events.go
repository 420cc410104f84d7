package ratingsevents

import (
	"time"

	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
)

// RatingSubmittedV1 is published after a rating has been stored.
const RatingSubmittedV1 = "ratings.submitted.v1"

// RatingSubmittedPayloadV1 describes a stored rating. The identity is
// reduced to a flag so that bus consumers never see raw user ids.
type RatingSubmittedPayloadV1 struct {
	GuildID   string                 `json:"guild_id"`
	Category  ratingsdomain.Category `json:"category"`
	Score     int                    `json:"score"`
	Anonymous bool                   `json:"anonymous"`
	CreatedAt time.Time              `json:"created_at"`
}

// NewRatingSubmittedPayload builds the event payload for an entry.
func NewRatingSubmittedPayload(e ratingsdomain.Entry) RatingSubmittedPayloadV1 {
	return RatingSubmittedPayloadV1{
		GuildID:   e.GuildID,
		Category:  e.Category,
		Score:     e.Score,
		Anonymous: e.Anonymous(),
		CreatedAt: e.CreatedAt,
	}
}
