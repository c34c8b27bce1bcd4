// Package checkout contains the checkout staging aggregate: a cart that has
// entered checkout but has not been finalized into a shopping order. A user
// owns at most one staging record at a time; it is deleted when the commit
// succeeds and reaped by a background job when abandoned. Staging holds no
// reservations; stock is only touched at commit.
package checkout

import (
	"errors"
	"fmt"
	"time"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
)

var (
	// ErrCheckoutOrderIsNotConstructed is returned when a CheckoutOrder was not
	// created through the NewCheckoutOrder factory function.
	ErrCheckoutOrderIsNotConstructed = errors.New("CheckoutOrder must be created via NewCheckoutOrder")
)

// Item is one staged line: a book, the quantity the buyer wants, and the
// edition format whose price will apply at commit.
type Item struct {
	BookID   kernel.UUID
	Quantity int
	Format   book.Format
}

// Validate checks the item's book id, quantity and format.
func (i Item) Validate() error {
	if err := i.BookID.Validate(); err != nil {
		return err
	}
	if i.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", i.Quantity))
	}
	return i.Format.Validate()
}

// CheckoutOrder is the staging aggregate, one per user.
type CheckoutOrder struct {
	id             kernel.UUID
	userID         kernel.UUID
	customer       order.Customer
	shippingMethod string
	items          []Item
	createdAt      time.Time

	isConstructed bool
}

// NewCheckoutOrder stages a checkout. Items must be non-empty, valid, and
// hold at most one line per book.
func NewCheckoutOrder(
	id, userID kernel.UUID,
	customer order.Customer,
	shippingMethod string,
	items []Item,
	createdAt time.Time,
) (*CheckoutOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if shippingMethod == "" {
		return nil, errs.NewValueIsRequiredError("shipping method")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[item.BookID]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("items are invalid",
				fmt.Errorf("book %s appears more than once", item.BookID))
		}
		seen[item.BookID] = struct{}{}
	}

	staged := make([]Item, len(items))
	copy(staged, items)

	return &CheckoutOrder{
		id:             id,
		userID:         userID,
		customer:       customer,
		shippingMethod: shippingMethod,
		items:          staged,
		createdAt:      createdAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the CheckoutOrder was properly constructed.
func (c *CheckoutOrder) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCheckoutOrderIsNotConstructed
	}
	return nil
}

// ID returns the staging record's unique identifier.
func (c *CheckoutOrder) ID() kernel.UUID { return c.id }

// UserID returns the identifier of the owning user.
func (c *CheckoutOrder) UserID() kernel.UUID { return c.userID }

// Customer returns the contact snapshot captured when checkout began.
func (c *CheckoutOrder) Customer() order.Customer { return c.customer }

// ShippingMethod returns the chosen shipping method label.
func (c *CheckoutOrder) ShippingMethod() string { return c.shippingMethod }

// Items returns a copy of the staged line items.
func (c *CheckoutOrder) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// CreatedAt returns when the staging record was created.
func (c *CheckoutOrder) CreatedAt() time.Time { return c.createdAt }

// IsAbandonedAt reports whether the staging record is older than ttl at the
// given instant. The expiry job uses this to reap stale checkouts.
func (c *CheckoutOrder) IsAbandonedAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(c.createdAt) > ttl
}
