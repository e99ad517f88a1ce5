package queries

import (
	"errors"
	"time"

	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id must be a positive identifier")
)

// GetOrderQuery retrieves one order by its identifier, joined with the
// owning user (including city) and the ordered job.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order's details.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, ErrOrderIDIsRequired
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// CityResponse is the city projection nested in the user details.
type CityResponse struct {
	ID     int
	Name   string
	Region string
}

// UserResponse is the owning-user projection nested in the order details.
type UserResponse struct {
	ID         string
	Surname    string
	Name       string
	Patronymic string
	Email      string
	AvatarPath string
	City       CityResponse
}

// JobResponse is the job projection nested in the order details.
type JobResponse struct {
	ID          string
	Name        string
	Description string
	Price       float64
	CoverURL    *string
	CategoryID  int
}

// GetOrderResponse is the full detail projection of a single order.
type GetOrderResponse struct {
	ID              int64
	Status          string
	OrderedAt       time.Time
	StatusChangedAt *time.Time
	User            UserResponse
	Job             JobResponse
}
