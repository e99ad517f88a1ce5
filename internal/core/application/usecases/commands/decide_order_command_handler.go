package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// DecideOrderCommandHandler resolves a verdict into the corresponding status
// change: COMPLETED for a successful outcome, REJECTED otherwise. All
// transition checks and closing notifications come from the wrapped
// ChangeOrderStatusCommandHandler, so both paths share identical semantics.
type DecideOrderCommandHandler struct {
	changeStatus ChangeOrderStatusCommandHandler
}

// NewDecideOrderCommandHandler creates a handler for order verdicts.
func NewDecideOrderCommandHandler(changeStatus ChangeOrderStatusCommandHandler) DecideOrderCommandHandler {
	return DecideOrderCommandHandler{changeStatus: changeStatus}
}

// Handle processes the verdict and returns the updated order.
// Error semantics match ChangeOrderStatusCommandHandler.Handle.
func (h *DecideOrderCommandHandler) Handle(ctx context.Context, cmd DecideOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	target := order.Rejected
	if cmd.IsCompleted() {
		target = order.Completed
	}

	statusCmd, err := NewChangeOrderStatusCommand(cmd.OrderID(), string(target))
	if err != nil {
		return nil, err
	}

	return h.changeStatus.Handle(ctx, statusCmd)
}
