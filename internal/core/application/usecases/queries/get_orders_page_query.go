// Package queries contains read-only operations over the order store.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and project rows into flat response structures.
package queries

import (
	"errors"
	"math"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOrdersPageQueryIsNotConstructed = errors.New(
		"GetOrdersPageQuery must be created via NewGetOrdersPageQuery constructor",
	)
)

// OrdersFilter carries the optional restrictions for a paged order listing.
// Nil fields mean "not filtered on". The zero value is a valid filter.
type OrdersFilter struct {
	// Status restricts to one catalog member, matched case-insensitively.
	// When nil the listing defaults to closed orders only (all terminal
	// statuses), never to an unfiltered superset.
	Status *string

	// Search restricts to orders whose job name contains the substring,
	// case-insensitively.
	Search *string

	// CategoryID restricts to orders whose job belongs to the category.
	CategoryID *int

	// MasterOrders selects the perspective: orders received as a job-master
	// instead of orders placed as a customer.
	MasterOrders bool
}

// GetOrdersPageQuery retrieves one page of a user's orders, filtered and
// sorted newest first.
//
// Example:
//
//	query, err := NewGetOrdersPageQuery(userID, OrdersFilter{}, 0, 10)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrdersPageQueryHandler(db, order.DefaultTransitionTable())
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d of %d orders\n", len(page.Items), page.TotalCount)
type GetOrdersPageQuery struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	filter     OrdersFilter
	pageNumber int
	pageSize   int

	guard guard.ConstructorGuard
}

// NewGetOrdersPageQuery creates a query for a page of the user's orders.
//
// Pagination parameters are validated up front and fail fast with
// *errs.ValueIsOutOfRangeError: pageNumber must be >= 0 and pageSize > 0.
// Out-of-range values are rejected, never silently clamped. A provided
// status filter must name a catalog member.
func NewGetOrdersPageQuery(
	userID kernel.UUID,
	filter OrdersFilter,
	pageNumber, pageSize int,
) (GetOrdersPageQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersPageQuery{}, err
	}

	if pageNumber < 0 {
		return GetOrdersPageQuery{}, errs.NewValueIsOutOfRangeError("pageNumber", pageNumber, 0, math.MaxInt32)
	}

	if pageSize <= 0 {
		return GetOrdersPageQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, math.MaxInt32)
	}

	if filter.Status != nil {
		status, ok := order.ParseStatus(*filter.Status)
		if !ok {
			return GetOrdersPageQuery{}, errs.NewValueIsInvalidError("status")
		}
		canonical := status.String()
		filter.Status = &canonical
	}

	return GetOrdersPageQuery{
		userID:     userID,
		filter:     filter,
		pageNumber: pageNumber,
		pageSize:   pageSize,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersPageQueryIsNotConstructed if validation fails.
func (q GetOrdersPageQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersPageQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose orders are listed.
func (q GetOrdersPageQuery) UserID() kernel.UUID {
	return q.userID
}

// Filter returns the optional restrictions, with a provided status already
// normalized to canonical form.
func (q GetOrdersPageQuery) Filter() OrdersFilter {
	return q.filter
}

// PageNumber returns the zero-based page number.
func (q GetOrdersPageQuery) PageNumber() int {
	return q.pageNumber
}

// PageSize returns the page size.
func (q GetOrdersPageQuery) PageSize() int {
	return q.pageSize
}

// OrderSummaryResponse is the flattened projection of one order row joined
// with its job, category, and job-master.
type OrderSummaryResponse struct {
	OrderID        int64
	Status         string
	OrderedAt      time.Time
	JobName        string
	JobDescription string
	JobPrice       float64
	JobCoverURL    *string
	CategoryName   string
	MasterFullName string
	MasterCityID   int
}

// GetOrdersPageResponse is one page of order summaries plus the total match
// count computed before pagination. PageNumber and PageSize echo the request
// unchanged.
type GetOrdersPageResponse struct {
	Items      []OrderSummaryResponse
	TotalCount int64
	PageNumber int
	PageSize   int
}
