package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrIllegalTransition is returned when both statuses are catalog members
	// but the transition table has no edge between them.
	ErrIllegalTransition = errors.New("status transition is not allowed")

	// ErrOrderNotEditable is returned when a mutation other than a status change
	// is attempted outside the Created status.
	ErrOrderNotEditable = errors.New("order can only be edited in created status")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a persistent identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is already assigned")
)

// Order represents a marketplace order linking a customer to a job listing.
// It is the aggregate root that manages the order lifecycle from creation
// through the status state machine to one of the terminal states.
//
// Order follows these invariants:
//   - Must reference a valid owning user and a valid job
//   - Status is always a member of the Status catalog
//   - Status mutations go through the TransitionTable gate only
//   - The ordering timestamp is set once and never changes
//   - Can only be created through NewOrder or RestoreOrder
//
// The identifier is numeric and server-assigned: new orders carry a zero id
// until the repository persists them and assigns one.
type Order struct {
	id              int64
	userID          kernel.UUID
	jobID           kernel.UUID
	status          Status
	orderedAt       time.Time
	statusChangedAt *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in the Created status.
//
// The creation moment must be supplied by the caller so the aggregate stays
// deterministic and testable without a live clock. Both the ordering
// timestamp and the status-changed timestamp are set to now: the status is
// considered "written" at creation, matching the persisted model.
func NewOrder(userID, jobID kernel.UUID, now time.Time) (*Order, error) {
	o := &Order{
		status:        Created,
		orderedAt:     now,
		isConstructed: true,
	}

	changedAt := now
	o.statusChangedAt = &changedAt

	if err := errors.Join(
		o.setUserID(userID),
		o.setJobID(jobID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without running the
// creation-time rules. The stored status must still be a catalog member.
func RestoreOrder(
	id int64,
	userID, jobID kernel.UUID,
	status Status,
	orderedAt time.Time,
	statusChangedAt *time.Time,
) (*Order, error) {
	if !status.IsValid() {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(status)))
	}

	o := &Order{
		id:              id,
		status:          status,
		orderedAt:       orderedAt,
		statusChangedAt: statusChangedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setJobID(jobID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value or hand-built instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their persistent identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the server-assigned identifier, or zero for unpersisted orders.
func (o *Order) ID() int64 {
	return o.id
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// JobID returns the referenced job's identifier.
func (o *Order) JobID() kernel.UUID {
	return o.jobID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// OrderedAt returns the creation timestamp.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// StatusChangedAt returns the timestamp of the last status write.
// It is nil only for legacy rows restored without one.
func (o *Order) StatusChangedAt() *time.Time {
	return o.statusChangedAt
}

// AssignID records the identifier the store assigned on insert.
// It may be called exactly once, with a positive id.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	o.id = id
	return nil
}

// ChangeStatus moves the order to the requested status through the
// transition table gate.
//
// The returned boolean reports whether observable state actually changed:
// re-asserting the current status is a successful no-op that leaves the
// status-changed timestamp untouched.
//
// Errors:
//   - *errs.ValueIsInvalidError when requested is not a catalog member
//   - ErrIllegalTransition (wrapped) when no edge permits the move
func (o *Order) ChangeStatus(table TransitionTable, requested string, now time.Time) (bool, error) {
	target, ok := ParseStatus(requested)
	if !ok {
		return false, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", requested))
	}

	if target == o.status {
		return false, nil
	}

	if !table.CanTransition(string(o.status), string(target)) {
		return false, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, o.status, target)
	}

	o.status = target
	changedAt := now
	o.statusChangedAt = &changedAt
	return true, nil
}

// ChangeJob re-points the order at a different job listing.
// Permitted only while the order is still in the Created status.
func (o *Order) ChangeJob(jobID kernel.UUID, now time.Time) error {
	if o.status != Created {
		return fmt.Errorf("%w: order is %s", ErrOrderNotEditable, o.status)
	}

	if err := jobID.Validate(); err != nil {
		return err
	}

	o.jobID = jobID
	changedAt := now
	o.statusChangedAt = &changedAt
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	o.jobID = jobID
	return nil
}
