package ratingsrouter

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/XdrBOBX/rating-widget/app/eventbus"
	ratingsevents "github.com/XdrBOBX/rating-widget/app/modules/ratings/events"
	ratingshandlers "github.com/XdrBOBX/rating-widget/app/modules/ratings/infrastructure/handlers"
)

// RatingsRouter attaches the ratings consumers to the shared message router.
type RatingsRouter struct {
	logger     *slog.Logger
	Router     eventbus.Registrar
	subscriber message.Subscriber
}

// NewRatingsRouter creates a new RatingsRouter.
func NewRatingsRouter(logger *slog.Logger, router eventbus.Registrar, subscriber message.Subscriber) *RatingsRouter {
	return &RatingsRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
	}
}

// Configure registers every ratings consumer.
func (r *RatingsRouter) Configure(handlers ratingshandlers.Handlers) {
	name := "ratings." + ratingsevents.RatingSubmittedV1
	r.Router.AddNoPublisherHandler(
		name,
		ratingsevents.RatingSubmittedV1,
		r.subscriber,
		eventbus.TypedHandler(name, r.logger, handlers.HandleRatingSubmitted),
	)
}
