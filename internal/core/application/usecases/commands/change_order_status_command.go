package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id must be a positive identifier")
	ErrStatusIsRequired  = errors.New("status is required")
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status. The raw status string is validated against the catalog
// by the domain, not here: the command only requires it to be non-empty so
// the handler can produce the proper invalid-status error.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
func NewChangeOrderStatusCommand(orderID int64, status string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mutate.
func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the requested status as supplied by the caller.
func (c ChangeOrderStatusCommand) Status() string {
	return c.status
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status string) error {
	if status == "" {
		return ErrStatusIsRequired
	}

	c.status = status
	return nil
}
