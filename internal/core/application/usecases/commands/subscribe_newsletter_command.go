package commands

import (
	"errors"
	"net/mail"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrSubscribeNewsletterCommandIsNotConstructed = errors.New(
	"SubscribeNewsletterCommand must be created via NewSubscribeNewsletterCommand constructor",
)

// SubscribeNewsletterCommand represents a request to join the mailing list.
type SubscribeNewsletterCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewSubscribeNewsletterCommand creates a command to subscribe an email address.
func NewSubscribeNewsletterCommand(email string) (SubscribeNewsletterCommand, error) {
	command := SubscribeNewsletterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setEmail(email); err != nil {
		return SubscribeNewsletterCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubscribeNewsletterCommand) Validate() error {
	return c.guard.Validate(ErrSubscribeNewsletterCommandIsNotConstructed)
}

// Email returns the address being subscribed.
func (c SubscribeNewsletterCommand) Email() string {
	return c.email
}

func (c *SubscribeNewsletterCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	c.email = email
	return nil
}
