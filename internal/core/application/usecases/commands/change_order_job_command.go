package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrChangeOrderJobCommandIsNotConstructed = errors.New(
		"ChangeOrderJobCommand must be created via NewChangeOrderJobCommand constructor",
	)
)

// ChangeOrderJobCommand represents a request to re-point an order at a
// different job listing. Only orders still in CREATED status are editable.
type ChangeOrderJobCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	jobID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeOrderJobCommand creates a command to change an order's job reference.
func NewChangeOrderJobCommand(orderID int64, jobID kernel.UUID) (ChangeOrderJobCommand, error) {
	cmd := ChangeOrderJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setJobID(jobID),
	); err != nil {
		return ChangeOrderJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderJobCommandIsNotConstructed if validation fails.
func (c ChangeOrderJobCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderJobCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c ChangeOrderJobCommand) OrderID() int64 {
	return c.orderID
}

// JobID returns the identifier of the new job listing.
func (c ChangeOrderJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *ChangeOrderJobCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}
