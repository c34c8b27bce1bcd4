package commands

import (
	"errors"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

// LoginUserCommand represents a credential check for an account.
type LoginUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginUserCommand creates a command to authenticate an account.
func NewLoginUserCommand(email, password string) (LoginUserCommand, error) {
	command := LoginUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEmail(email),
		command.setPassword(password),
	); err != nil {
		return LoginUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

// Email returns the account email address.
func (c LoginUserCommand) Email() string {
	return c.email
}

// Password returns the plain-text password to verify.
func (c LoginUserCommand) Password() string {
	return c.password
}

func (c *LoginUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *LoginUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
