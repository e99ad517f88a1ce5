// Package jobs provides scheduled background tasks for the marketplace order core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order lifecycle.
//
// # Available Jobs
//
// 1. OutboxDispatchJob - Runs every second to publish pending lifecycle events to the broker
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchOutboxHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *", running every
// second so committed lifecycle events reach downstream consumers promptly.
//
// # Error Handling
//
// An empty outbox is an expected quiet tick and is not logged. Broker and
// store failures are logged and retried on the next tick; pending messages
// stay in the outbox until published.
package jobs
