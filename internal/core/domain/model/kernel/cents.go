package kernel

import "bookstore/internal/pkg/errs"

// Cents is the money representation used across the domain: an integer number
// of cents. Catalog prices, shipping fees, taxes and order amounts are all
// Cents, which keeps arithmetic exact and comparisons trivial.
//
// Negative amounts are invalid everywhere in the model.
type Cents int64

// Mul returns the amount multiplied by a quantity.
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}

// Add returns the sum of two amounts.
func (c Cents) Add(other Cents) Cents {
	return c + other
}

// Validate rejects negative amounts.
func (c Cents) Validate() error {
	if c < 0 {
		return errs.NewValueIsInvalidError("amount must not be negative")
	}
	return nil
}
