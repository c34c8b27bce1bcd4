package order

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line was not created via NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine")

// Line is an immutable order line: which book, how many copies, which edition
// (the version tag records the format label chosen at checkout) and the unit
// price frozen at commit time.
type Line struct {
	bookID    kernel.UUID
	quantity  int
	version   string
	unitPrice kernel.Cents

	isConstructed bool
}

// NewLine creates an order line. Quantity must be positive, the version tag
// must be present, and the unit price must not be negative.
func NewLine(bookID kernel.UUID, quantity int, version string, unitPrice kernel.Cents) (Line, error) {
	if err := bookID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if version == "" {
		return Line{}, errs.NewValueIsRequiredError("version")
	}
	if err := unitPrice.Validate(); err != nil {
		return Line{}, err
	}
	return Line{
		bookID:        bookID,
		quantity:      quantity,
		version:       version,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the Line was created via NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// BookID returns the identifier of the ordered book.
func (l Line) BookID() kernel.UUID { return l.bookID }

// Quantity returns the number of copies ordered.
func (l Line) Quantity() int { return l.quantity }

// Version returns the snapshot tag recorded for the line, the format label
// chosen at checkout.
func (l Line) Version() string { return l.version }

// UnitPrice returns the per-copy price frozen at commit time.
func (l Line) UnitPrice() kernel.Cents { return l.unitPrice }

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() kernel.Cents { return l.unitPrice.Mul(l.quantity) }
