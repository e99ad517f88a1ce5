package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// UserRepository exposes the read-side checks the order lifecycle needs
// against the user store. User records themselves are owned by another part
// of the system; order creation only verifies the owner exists.
type UserRepository interface {
	// Exists reports whether a user with the given identifier is registered.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
