// Package outbox models the transactional outbox used to deliver order
// lifecycle events. Messages are written in the same database transaction as
// the state change they describe and published asynchronously afterwards,
// so a committed transition is never lost to a broker outage.
package outbox

import (
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// Message is a stored lifecycle event awaiting publication.
//
// Key is the idempotency key (order id plus target status), letting
// consumers deduplicate the at-least-once delivery the dispatch job
// provides. PublishedAt is nil until the message has been handed to the
// broker.
type Message struct {
	ID          int64
	Key         string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// NewMessage wraps a lifecycle event into a pending outbox message.
func NewMessage(event order.Event, now time.Time) (Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return Message{}, fmt.Errorf("marshal %s event for order %d: %w", event.Type, event.OrderID, err)
	}

	return Message{
		Key:       fmt.Sprintf("%d:%s", event.OrderID, event.Status),
		Payload:   payload,
		CreatedAt: now,
	}, nil
}

// IsPublished reports whether the message has already been handed to the broker.
func (m Message) IsPublished() bool {
	return m.PublishedAt != nil
}
