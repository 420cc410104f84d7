package supportershandlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	supportersservice "github.com/XdrBOBX/rating-widget/app/modules/supporters/application"
	supportersdomain "github.com/XdrBOBX/rating-widget/app/modules/supporters/domain"
	supportersevents "github.com/XdrBOBX/rating-widget/app/modules/supporters/events"
	supportersdb "github.com/XdrBOBX/rating-widget/app/modules/supporters/infrastructure/repositories"
	"github.com/XdrBOBX/rating-widget/app/shared/httpx"
)

// Handlers groups the supporter endpoints and bus consumers.
type Handlers interface {
	HandleTop(w http.ResponseWriter, r *http.Request)
	HandleSupporterUpserted(ctx context.Context, payload *supportersevents.SupporterUpsertedPayloadV1) error
}

// SupporterHandlers implements Handlers.
type SupporterHandlers struct {
	service supportersservice.Service
	logger  *slog.Logger
}

func NewSupporterHandlers(service supportersservice.Service, logger *slog.Logger) *SupporterHandlers {
	return &SupporterHandlers{service: service, logger: logger}
}

// HandleTop serves GET /api/supporters/top?guildId=&limit=.
func (h *SupporterHandlers) HandleTop(w http.ResponseWriter, r *http.Request) {
	limit := httpx.QueryInt(r, "limit", supportersdomain.DefaultTopLimit)

	top, err := h.service.TopSupporters(r.Context(), r.URL.Query().Get("guildId"), limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		httpx.Error(w, http.StatusInternalServerError, "internal_error")
		return
	}
	httpx.JSON(w, http.StatusOK, top)
}

// HandleSupporterUpserted applies a directory update from the bus. Invalid
// records are acked and dropped.
func (h *SupporterHandlers) HandleSupporterUpserted(ctx context.Context, payload *supportersevents.SupporterUpsertedPayloadV1) error {
	err := h.service.UpsertSupporter(ctx, payload.Supporter())
	if errors.Is(err, supportersdb.ErrInvalidSupporter) {
		h.logger.WarnContext(ctx, "Dropping invalid supporter record",
			slog.String("guild_id", payload.GuildID),
			slog.String("supporter_id", payload.ID),
			slog.Any("error", err),
		)
		return nil
	}
	return err
}

var _ Handlers = (*SupporterHandlers)(nil)
