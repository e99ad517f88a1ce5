package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrDispatchOutboxCommandIsNotConstructed = errors.New(
		"DispatchOutboxCommand must be created via NewDispatchOutboxCommand constructor",
	)
	ErrBatchSizeIsInvalid = errors.New("batch size must be greater than 0")
)

// DispatchOutboxCommand represents one drain pass over the pending outbox
// messages, publishing up to batchSize of them to the broker.
type DispatchOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewDispatchOutboxCommand creates a command to drain pending outbox messages.
func NewDispatchOutboxCommand(batchSize int) (DispatchOutboxCommand, error) {
	cmd := DispatchOutboxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchSize(batchSize); err != nil {
		return DispatchOutboxCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchOutboxCommandIsNotConstructed if validation fails.
func (c DispatchOutboxCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOutboxCommandIsNotConstructed)
}

// BatchSize returns the maximum number of messages to publish in one pass.
func (c DispatchOutboxCommand) BatchSize() int {
	return c.batchSize
}

func (c *DispatchOutboxCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return ErrBatchSizeIsInvalid
	}

	c.batchSize = batchSize
	return nil
}
