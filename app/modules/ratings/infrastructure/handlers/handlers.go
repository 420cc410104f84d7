package ratingshandlers

import (
	"log/slog"
	"strconv"

	ratingsservice "github.com/XdrBOBX/rating-widget/app/modules/ratings/application"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/trace"
)

// RatingHandlers implements the Handlers interface.
type RatingHandlers struct {
	service   ratingsservice.Service
	logger    *slog.Logger
	tracer    trace.Tracer
	submitted *prometheus.CounterVec
}

// NewRatingHandlers creates the handlers and registers the submitted-ratings
// counter on reg.
func NewRatingHandlers(
	service ratingsservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
	reg prometheus.Registerer,
) *RatingHandlers {
	return &RatingHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
		submitted: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "ratings_submitted_total",
			Help: "Ratings accepted, by category and score.",
		}, []string{"category", "score"}),
	}
}

func scoreLabel(score int) string {
	return strconv.Itoa(score)
}

var _ Handlers = (*RatingHandlers)(nil)
