package order

import "time"

// EventType distinguishes the lifecycle notifications emitted downstream.
type EventType string

const (
	// EventOrderCreated is emitted after a new order is committed.
	EventOrderCreated EventType = "order_created"

	// EventOrderClosed is emitted after a committed transition into a closing status.
	EventOrderClosed EventType = "order_closed"
)

// Event is the structured lifecycle notification payload handed to the
// event sink. The JSON field names are part of the downstream contract.
type Event struct {
	Type      EventType `json:"type"`
	OrderID   int64     `json:"orderId"`
	UserID    string    `json:"userId"`
	JobID     string    `json:"jobId"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NewCreatedEvent builds the order_created notification for a persisted order.
func NewCreatedEvent(o *Order) Event {
	return Event{
		Type:      EventOrderCreated,
		OrderID:   o.ID(),
		UserID:    o.UserID().String(),
		JobID:     o.JobID().String(),
		Status:    o.Status().String(),
		Timestamp: o.OrderedAt(),
	}
}

// NewClosedEvent builds the order_closed notification carrying the closing moment.
func NewClosedEvent(o *Order, closedAt time.Time) Event {
	return Event{
		Type:      EventOrderClosed,
		OrderID:   o.ID(),
		UserID:    o.UserID().String(),
		JobID:     o.JobID().String(),
		Status:    o.Status().String(),
		Timestamp: closedAt,
	}
}
