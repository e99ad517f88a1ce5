package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrDecideOrderCommandIsNotConstructed = errors.New(
		"DecideOrderCommand must be created via NewDecideOrderCommand constructor",
	)
)

// DecideOrderCommand represents a job-master's verdict on an order in work:
// completed successfully or rejected. It is a convenience over the generic
// status change targeting COMPLETED or REJECTED.
type DecideOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	isCompleted bool

	guard guard.ConstructorGuard
}

// NewDecideOrderCommand creates a command recording the verdict on an order.
func NewDecideOrderCommand(orderID int64, isCompleted bool) (DecideOrderCommand, error) {
	cmd := DecideOrderCommand{
		isCompleted: isCompleted,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DecideOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDecideOrderCommandIsNotConstructed if validation fails.
func (c DecideOrderCommand) Validate() error {
	return c.guard.Validate(ErrDecideOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being decided.
func (c DecideOrderCommand) OrderID() int64 {
	return c.orderID
}

// IsCompleted reports whether the verdict is successful completion.
func (c DecideOrderCommand) IsCompleted() bool {
	return c.isCompleted
}

func (c *DecideOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
