package commands

import (
	"context"
	"time"

	"bookstore/internal/core/domain/model/user"
)

// RegisterUserCommandHandler handles account registration.
// New accounts always start with the customer role; staff and admin roles
// are granted out of band.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for registrations.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Registering an email that is already taken surfaces the storage layer's
// uniqueness error.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, command RegisterUserCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := user.NewUser(
		command.UserID(),
		command.Email(),
		command.Name(),
		command.Password(),
		user.Customer,
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
