package supportersservice

import (
	"context"
	"errors"
	"log/slog"

	supportersdomain "github.com/XdrBOBX/rating-widget/app/modules/supporters/domain"
	supportersdb "github.com/XdrBOBX/rating-widget/app/modules/supporters/infrastructure/repositories"
	"github.com/XdrBOBX/rating-widget/app/shared/metrics"
	"github.com/XdrBOBX/rating-widget/app/shared/operation"
	"go.opentelemetry.io/otel/trace"
)

// SupporterService implements the Service interface.
type SupporterService struct {
	directory supportersdb.Directory
	telemetry operation.Telemetry
}

func NewSupporterService(
	directory supportersdb.Directory,
	logger *slog.Logger,
	opMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) *SupporterService {
	return &SupporterService{
		directory: directory,
		telemetry: operation.Telemetry{
			Service: "supporters",
			Logger:  logger,
			Tracer:  tracer,
			Metrics: opMetrics,
			Expected: func(err error) bool {
				return errors.Is(err, supportersdb.ErrInvalidSupporter)
			},
		},
	}
}

func (s *SupporterService) TopSupporters(ctx context.Context, guildID string, limit int) ([]supportersdomain.Ranked, error) {
	return operation.Run(ctx, s.telemetry, "TopSupporters", guildID,
		func(ctx context.Context) ([]supportersdomain.Ranked, error) {
			var directory []supportersdomain.Supporter
			if guildID != "" {
				var err error
				directory, err = s.directory.ListByGuild(ctx, guildID)
				if err != nil {
					return nil, err
				}
			}
			return supportersdomain.RankTop(guildID, directory, limit), nil
		})
}

func (s *SupporterService) UpsertSupporter(ctx context.Context, supporter supportersdomain.Supporter) error {
	_, err := operation.Run(ctx, s.telemetry, "UpsertSupporter", supporter.GuildID,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.directory.Upsert(ctx, supporter)
		})
	return err
}

var _ Service = (*SupporterService)(nil)
