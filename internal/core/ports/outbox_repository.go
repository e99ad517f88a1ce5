package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/outbox"
)

// OutboxRepository defines the persistence contract for pending lifecycle
// event messages. Add is called inside the same transaction as the order
// mutation the message describes; the dispatch job drains the rest.
type OutboxRepository interface {
	// Add persists a new pending message and assigns its identifier.
	Add(ctx context.Context, message *outbox.Message) error

	// GetUnpublished retrieves up to limit pending messages, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]outbox.Message, error)

	// MarkPublished records that the message was handed to the broker at the
	// given moment. Returns *errs.ObjectNotFoundError for unknown ids.
	MarkPublished(ctx context.Context, id int64, at time.Time) error
}
