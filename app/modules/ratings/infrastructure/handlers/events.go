package ratingshandlers

import (
	"context"
	"log/slog"

	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
	ratingsevents "github.com/XdrBOBX/rating-widget/app/modules/ratings/events"
)

// HandleRatingSubmitted projects stored ratings into the submitted-ratings
// counter. Payloads outside the rating domain are dropped so that bus
// traffic cannot grow the label set.
func (h *RatingHandlers) HandleRatingSubmitted(ctx context.Context, payload *ratingsevents.RatingSubmittedPayloadV1) error {
	ctx, span := h.tracer.Start(ctx, "ratings.HandleRatingSubmitted")
	defer span.End()

	category, ok := ratingsdomain.ParseCategory(string(payload.Category))
	if !ok || payload.Score < ratingsdomain.MinScore || payload.Score > ratingsdomain.MaxScore {
		h.logger.WarnContext(ctx, "Dropping malformed rating event",
			slog.String("guild_id", payload.GuildID),
			slog.String("category", string(payload.Category)),
			slog.Int("score", payload.Score),
		)
		return nil
	}

	h.submitted.WithLabelValues(string(category), scoreLabel(payload.Score)).Inc()
	return nil
}
