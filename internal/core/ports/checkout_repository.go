package ports

import (
	"context"
	"time"

	"bookstore/internal/core/domain/model/checkout"
	"bookstore/internal/core/domain/model/kernel"
)

// CheckoutRepository defines the persistence contract for staged checkouts.
// At most one staged checkout exists per user; staging again replaces the
// previous row. A checkout holds no stock reservations; abandoned rows are
// swept by a job.
type CheckoutRepository interface {
	// Add persists a new staged checkout.
	Add(ctx context.Context, aggregate *checkout.CheckoutOrder) error

	// Get retrieves a staged checkout by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*checkout.CheckoutOrder, error)

	// Delete removes a staged checkout, either after commit or on expiry.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteByUser removes the user's staged checkout if one exists.
	// Deleting for a user with no staged checkout is not an error.
	DeleteByUser(ctx context.Context, userID kernel.UUID) error

	// GetAllCreatedBefore retrieves checkouts staged before the cutoff.
	GetAllCreatedBefore(ctx context.Context, cutoff time.Time) ([]*checkout.CheckoutOrder, error)
}
