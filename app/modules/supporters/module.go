package supporters

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/XdrBOBX/rating-widget/app/eventbus"
	supportersservice "github.com/XdrBOBX/rating-widget/app/modules/supporters/application"
	supportersdomain "github.com/XdrBOBX/rating-widget/app/modules/supporters/domain"
	supportershandlers "github.com/XdrBOBX/rating-widget/app/modules/supporters/infrastructure/handlers"
	supportersdb "github.com/XdrBOBX/rating-widget/app/modules/supporters/infrastructure/repositories"
	supportersrouter "github.com/XdrBOBX/rating-widget/app/modules/supporters/infrastructure/router"
	"github.com/XdrBOBX/rating-widget/app/shared/metrics"
	"github.com/XdrBOBX/rating-widget/config"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// Dependencies the supporters module is built from.
type Dependencies struct {
	Logger     *slog.Logger
	Tracer     trace.Tracer
	Metrics    *metrics.Collector
	Directory  supportersdb.Directory
	Seeds      []config.SupporterSeed
	Subscriber message.Subscriber
	Messages   eventbus.Registrar
	HTTP       chi.Router
}

// Module represents the supporters module.
type Module struct {
	Service supportersservice.Service
}

// NewModule seeds the directory, mounts the leaderboard route and registers
// the directory feed consumer.
func NewModule(ctx context.Context, deps Dependencies) (*Module, error) {
	logger := deps.Logger.With(slog.String("module", "supporters"))
	logger.InfoContext(ctx, "Initializing supporters module")

	service := supportersservice.NewSupporterService(deps.Directory, logger, deps.Metrics.Service("supporters"), deps.Tracer)

	for i, seed := range deps.Seeds {
		err := service.UpsertSupporter(ctx, supportersdomain.Supporter{
			GuildID:   seed.GuildID,
			ID:        seed.ID,
			Name:      seed.Name,
			AvatarURL: seed.Avatar,
			Points:    seed.Points,
			Rank:      seed.Rank,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to seed supporters[%d]: %w", i, err)
		}
	}
	if len(deps.Seeds) > 0 {
		logger.InfoContext(ctx, "Seeded supporter directory", slog.Int("count", len(deps.Seeds)))
	}

	handlers := supportershandlers.NewSupporterHandlers(service, logger)

	if deps.HTTP != nil {
		deps.HTTP.Get("/api/supporters/top", handlers.HandleTop)
	}
	if deps.Messages != nil && deps.Subscriber != nil {
		supportersrouter.NewSupportersRouter(logger, deps.Messages, deps.Subscriber).Configure(handlers)
	}

	return &Module{Service: service}, nil
}
