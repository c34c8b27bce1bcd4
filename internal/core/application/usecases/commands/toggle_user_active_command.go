package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrToggleUserActiveCommandIsNotConstructed = errors.New(
	"ToggleUserActiveCommand must be created via NewToggleUserActiveCommand constructor",
)

// ToggleUserActiveCommand represents a request to flip an account's active
// flag. Suspended accounts cannot log in.
type ToggleUserActiveCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleUserActiveCommand creates a command to toggle an account's state.
func NewToggleUserActiveCommand(userID kernel.UUID) (ToggleUserActiveCommand, error) {
	command := ToggleUserActiveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setUserID(userID); err != nil {
		return ToggleUserActiveCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleUserActiveCommand) Validate() error {
	return c.guard.Validate(ErrToggleUserActiveCommandIsNotConstructed)
}

// UserID returns the identifier of the account being toggled.
func (c ToggleUserActiveCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *ToggleUserActiveCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
