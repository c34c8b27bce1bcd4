package commands

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/user"
	"bookstore/internal/pkg/errs"
)

// LoginUserCommandHandler verifies account credentials.
// It returns the account on success so the transport layer can mint a
// session token from its id and role.
type LoginUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewLoginUserCommandHandler creates a handler for credential checks.
func NewLoginUserCommandHandler(uowFactory UserUoWFactory) LoginUserCommandHandler {
	return LoginUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the login command.
// An unknown email and a wrong password both fail with
// user.ErrInvalidCredentials so responses do not reveal which emails
// have accounts.
func (h LoginUserCommandHandler) Handle(ctx context.Context, command LoginUserCommand) (*user.User, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.UserRepository().GetByEmail(ctx, command.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err = aggregate.CheckPassword(command.Password()); err != nil {
		return nil, err
	}

	return aggregate, nil
}
