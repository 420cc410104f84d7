package ratingsservice

import (
	"errors"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
	ratingsdb "github.com/XdrBOBX/rating-widget/app/modules/ratings/infrastructure/repositories"
	"github.com/XdrBOBX/rating-widget/app/shared/metrics"
	"github.com/XdrBOBX/rating-widget/app/shared/operation"
	"go.opentelemetry.io/otel/trace"
)

// RatingService implements the Service interface.
type RatingService struct {
	repo      ratingsdb.Repository
	validator *ratingsdomain.Validator
	authors   AuthorResolver
	publisher message.Publisher
	logger    *slog.Logger
	telemetry operation.Telemetry
}

// NewRatingService creates a new RatingService. A nil publisher disables
// rating events; a nil resolver falls back to placeholder authors.
func NewRatingService(
	repo ratingsdb.Repository,
	validator *ratingsdomain.Validator,
	authors AuthorResolver,
	publisher message.Publisher,
	logger *slog.Logger,
	opMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) *RatingService {
	if validator == nil {
		validator = ratingsdomain.NewValidator(nil)
	}
	if authors == nil {
		authors = PlaceholderResolver{}
	}
	return &RatingService{
		repo:      repo,
		validator: validator,
		authors:   authors,
		publisher: publisher,
		logger:    logger,
		telemetry: operation.Telemetry{
			Service:  "ratings",
			Logger:   logger,
			Tracer:   tracer,
			Metrics:  opMetrics,
			Expected: isValidationError,
		},
	}
}

func isValidationError(err error) bool {
	var ve *ratingsdomain.ValidationError
	return errors.As(err, &ve)
}

var _ Service = (*RatingService)(nil)
