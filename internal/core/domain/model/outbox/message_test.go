package outbox_test

import (
	"encoding/json"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/outbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	userID := kernel.NewUUID()
	jobID := kernel.NewUUID()
	orderedAt := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	now := orderedAt.Add(time.Second)

	o, err := order.NewOrder(userID, jobID, orderedAt)
	require.NoError(t, err)
	require.NoError(t, o.AssignID(99))

	t.Run("should wrap event with idempotency key", func(t *testing.T) {
		message, err := outbox.NewMessage(order.NewCreatedEvent(o), now)

		require.NoError(t, err)
		assert.Equal(t, "99:CREATED", message.Key)
		assert.Equal(t, now, message.CreatedAt)
		assert.False(t, message.IsPublished())
		assert.Zero(t, message.ID)
	})

	t.Run("should carry the serialized event payload", func(t *testing.T) {
		message, err := outbox.NewMessage(order.NewCreatedEvent(o), now)
		require.NoError(t, err)

		var decoded order.Event
		require.NoError(t, json.Unmarshal(message.Payload, &decoded))
		assert.Equal(t, order.EventOrderCreated, decoded.Type)
		assert.Equal(t, int64(99), decoded.OrderID)
		assert.Equal(t, userID.String(), decoded.UserID)
		assert.Equal(t, "CREATED", decoded.Status)
	})
}

func TestMessage_IsPublished(t *testing.T) {
	publishedAt := time.Now()

	assert.False(t, outbox.Message{}.IsPublished())
	assert.True(t, outbox.Message{PublishedAt: &publishedAt}.IsPublished())
}
