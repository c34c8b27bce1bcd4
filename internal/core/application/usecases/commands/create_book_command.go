package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrCreateBookCommandIsNotConstructed = errors.New(
	"CreateBookCommand must be created via NewCreateBookCommand constructor",
)

// CreateBookCommand represents a request to add a title to the catalog.
// Attribute and price validation is deferred to the aggregate constructor,
// which owns those invariants.
type CreateBookCommand struct { //nolint:recvcheck //using for validation
	bookID     kernel.UUID
	attributes book.Attributes
	prices     book.Prices
	stock      int

	guard guard.ConstructorGuard
}

// NewCreateBookCommand creates a command to add a book to the catalog.
func NewCreateBookCommand(bookID kernel.UUID, attributes book.Attributes,
	prices book.Prices, stock int) (CreateBookCommand, error) {
	command := CreateBookCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBookID(bookID),
		command.setStock(stock),
	); err != nil {
		return CreateBookCommand{}, err
	}

	command.attributes = attributes
	command.prices = prices
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookCommandIsNotConstructed)
}

// BookID returns the identifier the new book will carry.
func (c CreateBookCommand) BookID() kernel.UUID {
	return c.bookID
}

// Attributes returns the descriptive catalog fields.
func (c CreateBookCommand) Attributes() book.Attributes {
	return c.attributes
}

// Prices returns the per-format prices.
func (c CreateBookCommand) Prices() book.Prices {
	return c.prices
}

// Stock returns the initial number of copies on hand.
func (c CreateBookCommand) Stock() int {
	return c.stock
}

func (c *CreateBookCommand) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}

	c.bookID = bookID
	return nil
}

func (c *CreateBookCommand) setStock(stock int) error {
	if stock < 0 {
		return errors.New("stock must not be negative")
	}

	c.stock = stock
	return nil
}
