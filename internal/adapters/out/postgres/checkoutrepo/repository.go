package checkoutrepo

import (
	"context"
	"errors"
	"time"

	"bookstore/internal/core/domain/model/checkout"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCheckoutRepository implements CheckoutRepository using GORM.
type GormCheckoutRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCheckoutRepository creates a new GORM checkout repository.
func NewGormCheckoutRepository(db *gorm.DB, tracker aggregateTracker) *GormCheckoutRepository {
	return &GormCheckoutRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new staged checkout to the database.
func (r *GormCheckoutRepository) Add(ctx context.Context, aggregate *checkout.CheckoutOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a staged checkout by ID.
func (r *GormCheckoutRepository) Get(ctx context.Context, id kernel.UUID) (*checkout.CheckoutOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CheckoutDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("checkout", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a staged checkout.
func (r *GormCheckoutRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CheckoutDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("checkout", id.String())
	}

	return nil
}

// DeleteByUser removes the user's staged checkout if one exists.
// A user with nothing staged is left alone; staging is replace semantics,
// so the caller cannot know whether a previous row exists.
func (r *GormCheckoutRepository) DeleteByUser(ctx context.Context, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&CheckoutDTO{}, "user_id = ?", userID.Bytes()).Error
}

// GetAllCreatedBefore retrieves checkouts staged before the cutoff.
func (r *GormCheckoutRepository) GetAllCreatedBefore(ctx context.Context,
	cutoff time.Time) ([]*checkout.CheckoutOrder, error) {
	var dtos []CheckoutDTO
	err := r.db.WithContext(ctx).Find(&dtos, "created_at < ?", cutoff).Error
	if err != nil {
		return nil, err
	}

	checkouts := make([]*checkout.CheckoutOrder, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		checkouts = append(checkouts, aggregate)
	}

	return checkouts, nil
}
