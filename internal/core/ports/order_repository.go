// Package ports defines repository and messaging interfaces for the
// marketplace order domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its numeric identifier.
	// The order must be valid and must not carry an identifier yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns *errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
