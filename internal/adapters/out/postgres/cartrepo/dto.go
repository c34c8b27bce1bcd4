// Package cartrepo provides data transfer objects and mapping functions for
// shopping cart persistence.
package cartrepo

import (
	"time"

	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting carts.
// One cart per user, enforced by the unique index.
type CartDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CreatedAt time.Time

	Items []CartItemDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one book in a cart. The composite primary key
// keeps a book from appearing twice.
type CartItemDTO struct {
	CartID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName overrides GORM's default naming convention.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	bookIDs := aggregate.BookIDs()
	items := make([]CartItemDTO, 0, len(bookIDs))
	for _, bookID := range bookIDs {
		items = append(items, CartItemDTO{
			CartID: aggregate.ID().Bytes(),
			BookID: bookID.Bytes(),
		})
	}

	return CartDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.UserID().Bytes(),
		CreatedAt: aggregate.CreatedAt(),
		Items:     items,
	}
}

// toDomain converts a database DTO to a cart aggregate using RestoreCart.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	bookIDs := make([]kernel.UUID, 0, len(dto.Items))
	for _, item := range dto.Items {
		bookID, itemErr := kernel.UUIDFromBytes(item.BookID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		bookIDs = append(bookIDs, bookID)
	}

	return cart.RestoreCart(id, userID, bookIDs, dto.CreatedAt)
}
