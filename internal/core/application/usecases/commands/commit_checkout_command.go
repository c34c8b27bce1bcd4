package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrCommitCheckoutCommandIsNotConstructed = errors.New(
	"CommitCheckoutCommand must be created via NewCommitCheckoutCommand constructor",
)

// CommitCheckoutCommand represents a request to turn a staged checkout into
// a placed order. The caller supplies the id the new order will get.
type CommitCheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	checkoutID kernel.UUID
	userID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewCommitCheckoutCommand creates a command to commit a staged checkout.
func NewCommitCheckoutCommand(orderID, checkoutID, userID kernel.UUID) (CommitCheckoutCommand, error) {
	command := CommitCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCheckoutID(checkoutID),
		command.setUserID(userID),
	); err != nil {
		return CommitCheckoutCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CommitCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCommitCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier the placed order will carry.
func (c CommitCheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CheckoutID returns the identifier of the staged checkout being committed.
func (c CommitCheckoutCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

// UserID returns the identifier of the user committing the checkout.
func (c CommitCheckoutCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *CommitCheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CommitCheckoutCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}

func (c *CommitCheckoutCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
