package ports

import (
	"context"

	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for shopping carts.
// A user has at most one cart at a time.
type CartRepository interface {
	// Add persists a new cart.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByUser retrieves the cart belonging to the given user.
	GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// Delete removes a cart and all its lines.
	Delete(ctx context.Context, id kernel.UUID) error
}
