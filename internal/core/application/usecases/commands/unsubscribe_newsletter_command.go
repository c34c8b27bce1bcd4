package commands

import (
	"errors"
	"net/mail"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrUnsubscribeNewsletterCommandIsNotConstructed = errors.New(
	"UnsubscribeNewsletterCommand must be created via NewUnsubscribeNewsletterCommand constructor",
)

// UnsubscribeNewsletterCommand represents a request to leave the mailing list.
type UnsubscribeNewsletterCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewUnsubscribeNewsletterCommand creates a command to unsubscribe an email address.
func NewUnsubscribeNewsletterCommand(email string) (UnsubscribeNewsletterCommand, error) {
	command := UnsubscribeNewsletterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setEmail(email); err != nil {
		return UnsubscribeNewsletterCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnsubscribeNewsletterCommand) Validate() error {
	return c.guard.Validate(ErrUnsubscribeNewsletterCommandIsNotConstructed)
}

// Email returns the address being unsubscribed.
func (c UnsubscribeNewsletterCommand) Email() string {
	return c.email
}

func (c *UnsubscribeNewsletterCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	c.email = email
	return nil
}
