package eventbus

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
)

// TypedHandler decodes a JSON payload and passes it to fn. Payloads that do
// not decode are logged and acked, since redelivery cannot fix them.
func TypedHandler[T any](
	name string,
	logger *slog.Logger,
	fn func(ctx context.Context, payload *T) error,
) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		var payload T
		if err := DecodePayload(msg, &payload); err != nil {
			logger.Warn("Dropping undecodable message",
				slog.String("handler", name),
				slog.String("message_id", msg.UUID),
				slog.Any("error", err),
			)
			return nil
		}
		return fn(msg.Context(), &payload)
	}
}

// Registrar is the part of message.Router a module needs to attach consumers.
type Registrar interface {
	AddNoPublisherHandler(handlerName, subscribeTopic string, subscriber message.Subscriber, handlerFunc message.NoPublishHandlerFunc) *message.Handler
}

var _ Registrar = (*message.Router)(nil)
