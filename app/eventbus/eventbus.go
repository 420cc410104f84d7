// Package eventbus provides the message transport shared by module routers.
// Without a NATS URL an in-process channel is used, so a single binary works
// with no broker.
package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	nc "github.com/nats-io/nats.go"
)

const channelBuffer = 64

// EventBus couples a publisher and subscriber on the same transport.
type EventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	transport  string
	logger     *slog.Logger
}

// NewEventBus connects to NATS when natsURL is set and falls back to an
// in-process gochannel otherwise.
func NewEventBus(natsURL string, logger *slog.Logger) (*EventBus, error) {
	wmLogger := watermill.NewSlogLogger(logger)

	if natsURL == "" {
		ch := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: channelBuffer}, wmLogger)
		logger.Info("Event bus using in-process channel")
		return &EventBus{publisher: ch, subscriber: ch, transport: "gochannel", logger: logger}, nil
	}

	marshaler := &nats.NATSMarshaler{}
	options := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Name("rating-widget"),
	}

	publisher, err := nats.NewPublisher(nats.PublisherConfig{
		URL:         natsURL,
		Marshaler:   marshaler,
		NatsOptions: options,
		JetStream:   nats.JetStreamConfig{Disabled: true},
	}, wmLogger)
	if err != nil {
		logger.Error("Failed to create NATS publisher", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	subscriber, err := nats.NewSubscriber(nats.SubscriberConfig{
		URL:              natsURL,
		Unmarshaler:      marshaler,
		NatsOptions:      options,
		QueueGroupPrefix: "rating-widget",
		JetStream:        nats.JetStreamConfig{Disabled: true},
	}, wmLogger)
	if err != nil {
		_ = publisher.Close()
		logger.Error("Failed to create NATS subscriber", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	logger.Info("Event bus connected to NATS", slog.String("url", natsURL))
	return &EventBus{publisher: publisher, subscriber: subscriber, transport: "nats", logger: logger}, nil
}

// Transport names the active transport.
func (eb *EventBus) Transport() string {
	return eb.transport
}

// Publish implements message.Publisher.
func (eb *EventBus) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		if msg.UUID == "" {
			msg.UUID = watermill.NewUUID()
		}
		eb.logger.Debug("Publishing message",
			slog.String("topic", topic),
			slog.String("message_id", msg.UUID),
		)
	}
	if err := eb.publisher.Publish(topic, messages...); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe implements message.Subscriber.
func (eb *EventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	eb.logger.Info("Subscribing to topic", slog.String("topic", topic))
	return eb.subscriber.Subscribe(ctx, topic)
}

// Close shuts down both sides of the transport.
func (eb *EventBus) Close() error {
	// gochannel uses one value for both sides.
	if pub, ok := eb.publisher.(*gochannel.GoChannel); ok {
		return pub.Close()
	}
	return errors.Join(eb.publisher.Close(), eb.subscriber.Close())
}

// NewMessage encodes payload as JSON and stamps a UUID and the correlation
// id carried by ctx, if any.
func NewMessage(ctx context.Context, payload any) (*message.Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), body)
	if id, ok := ctx.Value(correlationKey{}).(string); ok && id != "" {
		middleware.SetCorrelationID(id, msg)
	}
	msg.SetContext(ctx)
	return msg, nil
}

type correlationKey struct{}

// WithCorrelationID returns a context whose published messages carry id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// DecodePayload unmarshals a JSON message body.
func DecodePayload(msg *message.Message, v any) error {
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("failed to decode message %s: %w", msg.UUID, err)
	}
	return nil
}

var (
	_ message.Publisher  = (*EventBus)(nil)
	_ message.Subscriber = (*EventBus)(nil)
)
