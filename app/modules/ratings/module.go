package ratings

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/XdrBOBX/rating-widget/app/eventbus"
	ratingsservice "github.com/XdrBOBX/rating-widget/app/modules/ratings/application"
	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
	ratingshandlers "github.com/XdrBOBX/rating-widget/app/modules/ratings/infrastructure/handlers"
	ratingsdb "github.com/XdrBOBX/rating-widget/app/modules/ratings/infrastructure/repositories"
	ratingsrouter "github.com/XdrBOBX/rating-widget/app/modules/ratings/infrastructure/router"
	"github.com/XdrBOBX/rating-widget/app/shared/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// Dependencies the ratings module is built from.
type Dependencies struct {
	Logger     *slog.Logger
	Tracer     trace.Tracer
	Metrics    *metrics.Collector
	Registry   prometheus.Registerer
	Repository ratingsdb.Repository
	Authors    ratingsservice.AuthorResolver
	Publisher  message.Publisher
	Subscriber message.Subscriber
	Messages   eventbus.Registrar
	HTTP       chi.Router
}

// Module represents the ratings module.
type Module struct {
	Service ratingsservice.Service
}

// NewModule builds the service, mounts the HTTP routes and registers the
// bus consumers.
func NewModule(ctx context.Context, deps Dependencies) *Module {
	logger := deps.Logger.With(slog.String("module", "ratings"))
	logger.InfoContext(ctx, "Initializing ratings module")

	service := ratingsservice.NewRatingService(
		deps.Repository,
		ratingsdomain.NewValidator(nil),
		deps.Authors,
		deps.Publisher,
		logger,
		deps.Metrics.Service("ratings"),
		deps.Tracer,
	)
	handlers := ratingshandlers.NewRatingHandlers(service, logger, deps.Tracer, deps.Registry)

	if deps.HTTP != nil {
		deps.HTTP.Route("/api/ratings", func(r chi.Router) {
			r.Get("/summary", handlers.HandleSummary)
			r.Get("/recent", handlers.HandleRecent)
			r.Post("/", handlers.HandleSubmit)
		})
	}

	if deps.Messages != nil && deps.Subscriber != nil {
		ratingsrouter.NewRatingsRouter(logger, deps.Messages, deps.Subscriber).Configure(handlers)
	}

	logger.InfoContext(ctx, "Ratings module initialized")
	return &Module{Service: service}
}
