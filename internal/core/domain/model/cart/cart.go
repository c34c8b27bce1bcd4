// Package cart contains the shopping cart aggregate. A cart belongs to
// exactly one user and holds at most one line per book: quantity is not
// modeled at this layer, the buyer picks quantities when checkout begins.
// Cart lines carry no price either; totals are always computed against the
// current catalog.
package cart

import (
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart or RestoreCart factory functions.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

	// ErrBookAlreadyInCart is returned when adding a book the cart already holds.
	ErrBookAlreadyInCart = errors.New("book is already in the cart")
)

// Cart is the shopping cart aggregate root, one per user.
type Cart struct {
	id        kernel.UUID
	userID    kernel.UUID
	bookIDs   []kernel.UUID
	createdAt time.Time

	isConstructed bool
}

// NewCart creates an empty cart for a user.
func NewCart(id, userID kernel.UUID, createdAt time.Time) (*Cart, error) {
	return RestoreCart(id, userID, nil, createdAt)
}

// RestoreCart reconstructs a cart from persisted state. Duplicate book ids
// are rejected, matching the unique (cart, book) pair constraint.
func RestoreCart(id, userID kernel.UUID, bookIDs []kernel.UUID, createdAt time.Time) (*Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}

	c := &Cart{id: id, userID: userID, createdAt: createdAt, isConstructed: true}
	for _, bookID := range bookIDs {
		if err := c.AddBook(bookID); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID { return c.id }

// UserID returns the identifier of the owning user.
func (c *Cart) UserID() kernel.UUID { return c.userID }

// CreatedAt returns the cart creation timestamp.
func (c *Cart) CreatedAt() time.Time { return c.createdAt }

// BookIDs returns a copy of the book identifiers in the cart.
func (c *Cart) BookIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.bookIDs))
	copy(ids, c.bookIDs)
	return ids
}

// Contains reports whether the cart holds the given book.
func (c *Cart) Contains(bookID kernel.UUID) bool {
	for _, id := range c.bookIDs {
		if id.IsEqual(bookID) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.bookIDs) == 0
}

// AddBook adds a line for the given book.
// Fails with ErrBookAlreadyInCart on a duplicate.
func (c *Cart) AddBook(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}
	if c.Contains(bookID) {
		return ErrBookAlreadyInCart
	}
	c.bookIDs = append(c.bookIDs, bookID)
	return nil
}

// RemoveBook drops the line for the given book.
// Fails with ObjectNotFoundError when the cart does not hold it.
func (c *Cart) RemoveBook(bookID kernel.UUID) error {
	for i, id := range c.bookIDs {
		if id.IsEqual(bookID) {
			c.bookIDs = append(c.bookIDs[:i], c.bookIDs[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("bookId", bookID.String())
}

// Clear drops every line. Used when checkout staging consumes the cart.
func (c *Cart) Clear() {
	c.bookIDs = nil
}
