// Package kafka implements the order events publisher over a Kafka topic.
// Messages are keyed by the outbox idempotency key so consumers can dedupe
// the at-least-once delivery, and same-order events stay in one partition.
package kafka

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/outbox"

	kafkago "github.com/segmentio/kafka-go"
)

// OrderEventsPublisher publishes stored lifecycle messages to the configured
// order events topic.
type OrderEventsPublisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewOrderEventsPublisher creates a publisher writing to the given brokers
// and topic.
func NewOrderEventsPublisher(brokers []string, topic string, logger *slog.Logger) *OrderEventsPublisher {
	return &OrderEventsPublisher{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkago.Hash{},
			RequiredAcks: kafkago.RequireOne,
		},
		logger: logger.With("component", "order_events_publisher"),
	}
}

// Publish hands one message to the broker. The call blocks until the broker
// acknowledges the write or the context is done.
func (p *OrderEventsPublisher) Publish(ctx context.Context, message outbox.Message) error {
	err := p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(message.Key),
		Value: message.Payload,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish order event", "key", message.Key, "error", err)
		return err
	}

	return nil
}

// Close releases the underlying writer's connections.
func (p *OrderEventsPublisher) Close() error {
	return p.writer.Close()
}
