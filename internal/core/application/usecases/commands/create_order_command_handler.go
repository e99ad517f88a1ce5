package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/outbox"
	"marketplace/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies the owner exists, persists the order in CREATED status, and stores
// an order_created outbox message in the same transaction so the notification
// is published only after the write commits.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// The clock is injected so handlers stay deterministic under test.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the order creation command and returns the persisted order.
// Fails with *errs.ObjectNotFoundError when the owning user does not exist.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	exists, err := uow.UserRepository().Exists(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("user", cmd.UserID().String())
	}

	newOrder, err := order.NewOrder(cmd.UserID(), cmd.JobID(), h.now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	message, err := outbox.NewMessage(order.NewCreatedEvent(newOrder), h.now())
	if err != nil {
		return nil, err
	}

	if err = uow.OutboxRepository().Add(ctx, &message); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
