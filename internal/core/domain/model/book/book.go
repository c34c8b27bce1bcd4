package book

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

var (
	// ErrBookIsNotConstructed is returned when a Book instance was not created
	// through the NewBook or RestoreBook factory functions.
	ErrBookIsNotConstructed = errors.New("Book must be created via NewBook or RestoreBook")
)

// CuratedReview is the optional editorial review printed on a book's catalog
// page. All fields may be empty.
type CuratedReview struct {
	Text   string
	Date   string
	Author string
}

// Flags groups the catalog availability toggles of a book.
type Flags struct {
	BestSeller bool
	Ebook      bool
	Audiobook  bool
	OnOffer    bool
	OnDisplay  bool
}

// Attributes carries the descriptive fields of a book. Title, Publisher, Type
// and ISBN13 are required; the rest may be empty.
type Attributes struct {
	Title         string
	Publisher     string
	PublishedDate string
	Description   string
	Type          string
	PageCount     int
	ISBN13        string
	Cover         string
	Authors       []string
	Genres        []string
	CuratedReview CuratedReview
	Flags         Flags
}

// Book is the catalog aggregate root. It owns the only mutable piece of
// shared state in the system, the stock counter, and maintains these
// invariants:
//   - Title, publisher, type and ISBN-13 are present
//   - Page count is positive
//   - No price is negative
//   - Stock is never negative; it changes only via Reserve and Release
//   - Can only be created through NewBook or RestoreBook
type Book struct {
	id    kernel.UUID
	attrs Attributes

	prices Prices
	rating Rating
	stock  int

	isConstructed bool
}

// NewBook creates a catalog entry with the given attributes, price list and
// initial stock. New books start with an empty rating.
func NewBook(id kernel.UUID, attrs Attributes, prices Prices, stock int) (*Book, error) {
	return RestoreBook(id, attrs, prices, Rating{}, stock)
}

// RestoreBook reconstructs a Book from persisted state, re-running all
// invariant checks. Repositories use it when mapping database rows back into
// the domain.
func RestoreBook(id kernel.UUID, attrs Attributes, prices Prices, rating Rating, stock int) (*Book, error) {
	b := &Book{isConstructed: true}

	if err := errors.Join(
		b.setID(id),
		b.setAttributes(attrs),
		b.setPrices(prices),
		b.setRating(rating),
		b.setStock(stock),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the Book instance was properly constructed.
func (b *Book) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookIsNotConstructed
	}
	return nil
}

// IsEqual compares two books by identifier.
func (b *Book) IsEqual(other *Book) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the book's unique identifier.
func (b *Book) ID() kernel.UUID {
	return b.id
}

// Attributes returns the descriptive fields of the book.
func (b *Book) Attributes() Attributes {
	return b.attrs
}

// Prices returns the per-format price list.
func (b *Book) Prices() Prices {
	return b.prices
}

// Rating returns the aggregated review figures.
func (b *Book) Rating() Rating {
	return b.rating
}

// Stock returns the number of copies currently on hand.
func (b *Book) Stock() int {
	return b.stock
}

// PriceFor returns the unit price for the requested format.
// Formats whose availability flag is off (ebook or audiobook editions that
// were never produced) are rejected.
func (b *Book) PriceFor(format Format) (kernel.Cents, error) {
	if format == Ebook && !b.attrs.Flags.Ebook {
		return 0, errs.NewValueIsInvalidError("ebook edition is not available for this title")
	}
	if format == Audiobook && !b.attrs.Flags.Audiobook {
		return 0, errs.NewValueIsInvalidError("audiobook edition is not available for this title")
	}
	return b.prices.For(format)
}

// ShortageFor reports whether the current stock can cover a requested
// quantity. Returns nil when it can, or the shortage describing the gap.
// It never mutates the book, which lets checkout collect every insufficient
// line before rejecting the whole commit.
func (b *Book) ShortageFor(quantity int) *Shortage {
	if b.stock >= quantity {
		return nil
	}
	return &Shortage{BookID: b.id, Requested: quantity, Available: b.stock}
}

// Reserve decrements stock by quantity for a committed order line.
// Fails with OutOfStockError when stock is insufficient; the book is left
// untouched on any error.
func (b *Book) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if shortage := b.ShortageFor(quantity); shortage != nil {
		return NewOutOfStockError(*shortage)
	}
	b.stock -= quantity
	return nil
}

// Release returns quantity copies to stock. Used when an order holding
// reserved copies is cancelled.
func (b *Book) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	b.stock += quantity
	return nil
}

// UpdateAttributes replaces the descriptive fields, re-running validation.
// Stock, prices and rating are untouched.
func (b *Book) UpdateAttributes(attrs Attributes) error {
	return b.setAttributes(attrs)
}

// UpdatePrices replaces the price list.
func (b *Book) UpdatePrices(prices Prices) error {
	return b.setPrices(prices)
}

func (b *Book) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Book) setAttributes(attrs Attributes) error {
	if attrs.Title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if attrs.Publisher == "" {
		return errs.NewValueIsRequiredError("publisher")
	}
	if attrs.Type == "" {
		return errs.NewValueIsRequiredError("type")
	}
	if attrs.PageCount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("page count is invalid",
			fmt.Errorf("%d is not greater than 0", attrs.PageCount))
	}
	if len(attrs.ISBN13) != 13 {
		return errs.NewValueIsInvalidErrorWithCause("isbn13 is invalid",
			fmt.Errorf("%q is not 13 characters", attrs.ISBN13))
	}
	b.attrs = attrs
	return nil
}

func (b *Book) setPrices(prices Prices) error {
	if err := prices.Validate(); err != nil {
		return err
	}
	b.prices = prices
	return nil
}

func (b *Book) setRating(rating Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}
	b.rating = rating
	return nil
}

func (b *Book) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock is invalid",
			fmt.Errorf("%d is negative", stock))
	}
	b.stock = stock
	return nil
}
