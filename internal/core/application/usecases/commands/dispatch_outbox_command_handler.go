package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/ports"
)

// ErrNoPendingMessages is returned when a drain pass finds the outbox empty.
// Expected between lifecycle events; the dispatch job treats it as a quiet tick.
var ErrNoPendingMessages = errors.New("no pending outbox messages found")

// DispatchOutboxCommandHandler drains pending outbox messages to the broker.
//
// A drain pass marks messages published in one transaction that commits only
// after every publish in the batch succeeded. A broker failure mid-batch
// rolls the marks back, so already-published messages may go out again on the
// next tick: delivery is at-least-once, and the message key carries the
// idempotency key consumers dedupe on. A publish failure never affects the
// already-committed order state the message describes.
type DispatchOutboxCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventsPublisher
	now        func() time.Time
}

// NewDispatchOutboxCommandHandler creates a handler for outbox drain passes.
func NewDispatchOutboxCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventsPublisher,
	now func() time.Time,
) DispatchOutboxCommandHandler {
	return DispatchOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        now,
	}
}

// Handle publishes up to BatchSize pending messages, oldest first.
// Returns ErrNoPendingMessages when there is nothing to publish.
func (h *DispatchOutboxCommandHandler) Handle(ctx context.Context, cmd DispatchOutboxCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.OutboxRepository().GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		return ErrNoPendingMessages
	}

	for _, message := range pending {
		if err = h.publisher.Publish(ctx, message); err != nil {
			// Leave this and the following messages pending for the next tick.
			return err
		}

		if err = uow.OutboxRepository().MarkPublished(ctx, message.ID, h.now()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
