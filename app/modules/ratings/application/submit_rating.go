package ratingsservice

import (
	"context"
	"log/slog"

	"github.com/XdrBOBX/rating-widget/app/eventbus"
	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
	ratingsevents "github.com/XdrBOBX/rating-widget/app/modules/ratings/events"
	"github.com/XdrBOBX/rating-widget/app/shared/operation"
)

// SubmitRating validates the candidate, appends it and announces it.
func (s *RatingService) SubmitRating(ctx context.Context, candidate ratingsdomain.Candidate) (ratingsdomain.Entry, error) {
	return operation.Run(ctx, s.telemetry, "SubmitRating", candidate.GuildID,
		func(ctx context.Context) (ratingsdomain.Entry, error) {
			entry, err := s.validator.Validate(candidate)
			if err != nil {
				return ratingsdomain.Entry{}, err
			}

			if err := s.repo.Append(ctx, entry); err != nil {
				return ratingsdomain.Entry{}, err
			}

			s.publishSubmitted(ctx, entry)
			return entry, nil
		})
}

// publishSubmitted runs after the append, so a failure here must not fail
// the submission.
func (s *RatingService) publishSubmitted(ctx context.Context, entry ratingsdomain.Entry) {
	if s.publisher == nil {
		return
	}

	msg, err := eventbus.NewMessage(ctx, ratingsevents.NewRatingSubmittedPayload(entry))
	if err == nil {
		err = s.publisher.Publish(ratingsevents.RatingSubmittedV1, msg)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to publish rating event",
			slog.String("topic", ratingsevents.RatingSubmittedV1),
			slog.String("guild_id", entry.GuildID),
			slog.Any("error", err),
		)
	}
}
