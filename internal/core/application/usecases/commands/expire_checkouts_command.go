package commands

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var ErrExpireCheckoutsCommandIsNotConstructed = errors.New(
	"ExpireCheckoutsCommand must be created via NewExpireCheckoutsCommand constructor",
)

// ExpireCheckoutsCommand represents a request to sweep abandoned checkouts.
// It carries no parameters; the cutoff comes from handler configuration.
type ExpireCheckoutsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireCheckoutsCommand creates a command to sweep abandoned checkouts.
func NewExpireCheckoutsCommand() ExpireCheckoutsCommand {
	return ExpireCheckoutsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ExpireCheckoutsCommand) Validate() error {
	return c.guard.Validate(ErrExpireCheckoutsCommandIsNotConstructed)
}
