package supportersrouter

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/XdrBOBX/rating-widget/app/eventbus"
	supportersevents "github.com/XdrBOBX/rating-widget/app/modules/supporters/events"
	supportershandlers "github.com/XdrBOBX/rating-widget/app/modules/supporters/infrastructure/handlers"
)

// SupportersRouter attaches the directory feed consumer to the message router.
type SupportersRouter struct {
	logger     *slog.Logger
	Router     eventbus.Registrar
	subscriber message.Subscriber
}

func NewSupportersRouter(logger *slog.Logger, router eventbus.Registrar, subscriber message.Subscriber) *SupportersRouter {
	return &SupportersRouter{logger: logger, Router: router, subscriber: subscriber}
}

// Configure registers the supporter consumers.
func (r *SupportersRouter) Configure(handlers supportershandlers.Handlers) {
	name := "supporters." + supportersevents.SupporterUpsertedV1
	r.Router.AddNoPublisherHandler(
		name,
		supportersevents.SupporterUpsertedV1,
		r.subscriber,
		eventbus.TypedHandler(name, r.logger, handlers.HandleSupporterUpserted),
	)
}
