package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// ChangeOrderJobCommandHandler re-points an order at a different job listing.
// The domain enforces that only orders still in CREATED status are editable.
type ChangeOrderJobCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewChangeOrderJobCommandHandler creates a handler for job reference changes.
func NewChangeOrderJobCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) ChangeOrderJobCommandHandler {
	return ChangeOrderJobCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the job change and returns the updated order.
//
// Errors:
//   - *errs.ObjectNotFoundError when the order does not exist
//   - order.ErrOrderNotEditable (wrapped) when the order left CREATED status
func (h *ChangeOrderJobCommandHandler) Handle(ctx context.Context, cmd ChangeOrderJobCommand) (*order.Order, error) {
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

	if err = aggregate.ChangeJob(cmd.JobID(), h.now()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
