package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a request to put a book into a user's cart.
// The cart holds at most one line per book; quantity and format are chosen
// later at checkout.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	bookID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a book to a cart.
func NewAddCartItemCommand(userID, bookID kernel.UUID) (AddCartItemCommand, error) {
	command := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setBookID(bookID),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (c AddCartItemCommand) UserID() kernel.UUID {
	return c.userID
}

// BookID returns the identifier of the book being added.
func (c AddCartItemCommand) BookID() kernel.UUID {
	return c.bookID
}

func (c *AddCartItemCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *AddCartItemCommand) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}

	c.bookID = bookID
	return nil
}
