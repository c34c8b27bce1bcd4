package newsletterrepo

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/newsletter"
	"bookstore/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormNewsletterRepository implements NewsletterRepository using GORM.
type GormNewsletterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNewsletterRepository creates a new GORM newsletter repository.
func NewGormNewsletterRepository(db *gorm.DB, tracker aggregateTracker) *GormNewsletterRepository {
	return &GormNewsletterRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new subscription. A duplicate email surfaces as an error
// wrapping errs.ErrValueIsInvalid.
func (r *GormNewsletterRepository) Add(ctx context.Context, subscription *newsletter.Subscription) error {
	if err := subscription.Validate(); err != nil {
		return err
	}

	dto := fromDomain(subscription)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("email is already subscribed", err)
		}
		return err
	}

	r.tracker.TrackAggregate(subscription.ID(), subscription)
	return nil
}

// GetByEmail retrieves a subscription by email address.
func (r *GormNewsletterRepository) GetByEmail(ctx context.Context,
	email string) (*newsletter.Subscription, error) {
	var dto SubscriptionDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("subscription", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a subscription by email address.
func (r *GormNewsletterRepository) Delete(ctx context.Context, email string) error {
	result := r.db.WithContext(ctx).Delete(&SubscriptionDTO{}, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("subscription", email)
	}

	return nil
}

// isUniqueViolation reports whether err is a unique constraint failure,
// either as reported by the postgres driver (code 23505) or as translated
// by GORM.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
