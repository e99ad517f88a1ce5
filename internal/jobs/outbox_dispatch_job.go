package jobs

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// outboxDispatchBatchSize caps how many pending messages one tick publishes.
const outboxDispatchBatchSize = 100

// OutboxDispatchJob periodically drains the transactional outbox, publishing
// committed lifecycle events to the broker. Runs every second so downstream
// consumers see order changes promptly.
type OutboxDispatchJob struct {
	handler commands.DispatchOutboxCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOutboxDispatchJob creates a new job publishing pending outbox messages.
func NewOutboxDispatchJob(handler commands.DispatchOutboxCommandHandler, logger *slog.Logger) *OutboxDispatchJob {
	return &OutboxDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "outbox_dispatch_job"),
	}
}

// Start begins the outbox dispatch job to run every second.
func (j *OutboxDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewDispatchOutboxCommand(outboxDispatchBatchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Outbox dispatch command is invalid", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// An empty outbox is the expected quiet tick.
			if !errors.Is(handleErr, commands.ErrNoPendingMessages) {
				j.logger.ErrorContext(ctx, "Outbox dispatch job failed", "error", handleErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox dispatch job started (running every second)")
	return nil
}

// Stop stops the outbox dispatch job.
func (j *OutboxDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox dispatch job stopped")
}
