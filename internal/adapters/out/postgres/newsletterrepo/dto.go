// Package newsletterrepo provides data transfer objects and mapping
// functions for mailing list persistence.
package newsletterrepo

import (
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/newsletter"

	"github.com/google/uuid"
)

// SubscriptionDTO represents one mailing list row. The unique index on
// email is the uniqueness guarantee the domain relies on.
type SubscriptionDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	SubscribedAt time.Time
}

// TableName overrides GORM's default naming convention.
func (SubscriptionDTO) TableName() string {
	return "newsletter_subscriptions"
}

// fromDomain converts a subscription entity to its database representation.
func fromDomain(subscription *newsletter.Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:           subscription.ID().Bytes(),
		Email:        subscription.Email(),
		SubscribedAt: subscription.SubscribedAt(),
	}
}

// toDomain converts a database DTO to a subscription entity.
func toDomain(dto SubscriptionDTO) (*newsletter.Subscription, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return newsletter.NewSubscription(id, dto.Email, dto.SubscribedAt)
}
