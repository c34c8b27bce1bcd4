package ports

import (
	"context"

	"bookstore/internal/core/domain/model/newsletter"
)

// NewsletterRepository defines the persistence contract for mailing list
// subscriptions. Email uniqueness is enforced by storage.
type NewsletterRepository interface {
	// Add persists a new subscription. Adding an email that is already
	// subscribed returns an error wrapping errs.ErrValueIsInvalid.
	Add(ctx context.Context, subscription *newsletter.Subscription) error

	// GetByEmail retrieves a subscription by its email address.
	GetByEmail(ctx context.Context, email string) (*newsletter.Subscription, error)

	// Delete removes a subscription.
	Delete(ctx context.Context, email string) error
}
