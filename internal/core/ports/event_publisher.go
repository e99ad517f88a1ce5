package ports

import (
	"context"

	"marketplace/internal/core/domain/model/outbox"
)

// OrderEventsPublisher hands a stored lifecycle message to the broker.
// Implementations publish the message payload keyed by its idempotency key;
// delivery is at-least-once, the key lets consumers deduplicate.
type OrderEventsPublisher interface {
	Publish(ctx context.Context, message outbox.Message) error
}
