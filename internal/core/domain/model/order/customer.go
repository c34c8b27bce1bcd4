package order

import (
	"net/mail"

	"bookstore/internal/pkg/errs"
)

// Customer is the contact snapshot copied onto an order when the checkout
// commits. It is a value copy, deliberately detached from the live user
// record: editing a profile later must not rewrite order history.
type Customer struct {
	Name    string
	Email   string
	Address string
	Phone   string
}

// Validate requires name, email and address; phone may be empty.
func (c Customer) Validate() error {
	if c.Name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if c.Email == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer email", err)
	}
	if c.Address == "" {
		return errs.NewValueIsRequiredError("customer address")
	}
	return nil
}
