package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetLastOrdersQueryIsNotConstructed = errors.New(
		"GetLastOrdersQuery must be created via NewGetLastOrdersQuery constructor",
	)
)

// lastOrdersLimit caps the short closed-orders history shown on profiles.
const lastOrdersLimit = 5

// GetLastOrdersQuery retrieves the user's most recent finished orders:
// the latest COMPLETED or REJECTED ones, newest first, capped at five.
type GetLastOrdersQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLastOrdersQuery creates a query for the user's recent finished orders.
func NewGetLastOrdersQuery(userID kernel.UUID) (GetLastOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetLastOrdersQuery{}, err
	}

	return GetLastOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLastOrdersQueryIsNotConstructed if validation fails.
func (q GetLastOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetLastOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose history is requested.
func (q GetLastOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// LastOrderResponse is the projection of one finished order with its job.
type LastOrderResponse struct {
	ID              int64
	Status          string
	OrderedAt       time.Time
	StatusChangedAt *time.Time
	JobID           string
	JobName         string
	JobPrice        float64
	JobCoverURL     *string
}
