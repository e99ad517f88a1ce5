package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/outbox"
)

// ChangeOrderStatusCommandHandler moves orders through the status state
// machine. The transition table and the closing set are injected
// configuration: the handler itself carries no knowledge of which moves are
// legal or which statuses notify downstream consumers.
//
// When a transition lands in a closing status, an order_closed outbox message
// is stored in the same transaction as the status write. Re-asserting the
// current status is a successful no-op: no timestamp update, no message.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	table      order.TransitionTable
	closing    order.ClosingStatuses
	now        func() time.Time
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	table order.TransitionTable,
	closing order.ClosingStatuses,
	now func() time.Time,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		table:      table,
		closing:    closing,
		now:        now,
	}
}

// Handle processes the status change and returns the updated order.
//
// Errors:
//   - *errs.ObjectNotFoundError when the order does not exist
//   - *errs.ValueIsInvalidError when the requested status is not in the catalog
//   - order.ErrIllegalTransition (wrapped) when the table permits no edge
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	changedAt := h.now()
	changed, err := aggregate.ChangeStatus(h.table, cmd.Status(), changedAt)
	if err != nil {
		return nil, err
	}

	if !changed {
		// Idempotent re-application: nothing to persist, nothing to notify.
		return aggregate, nil
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if h.closing.Contains(aggregate.Status()) {
		message, msgErr := outbox.NewMessage(order.NewClosedEvent(aggregate, changedAt), changedAt)
		if msgErr != nil {
			return nil, msgErr
		}

		if err = uow.OutboxRepository().Add(ctx, &message); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
