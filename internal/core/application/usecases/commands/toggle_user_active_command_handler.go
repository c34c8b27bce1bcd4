package commands

import (
	"context"
)

// ToggleUserActiveCommandHandler handles account suspension and reactivation.
type ToggleUserActiveCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewToggleUserActiveCommandHandler creates a handler for account toggles.
func NewToggleUserActiveCommandHandler(uowFactory UserUoWFactory) ToggleUserActiveCommandHandler {
	return ToggleUserActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the toggle command.
// Returns an error wrapping errs.ErrObjectNotFound for unknown accounts.
func (h ToggleUserActiveCommandHandler) Handle(ctx context.Context, command ToggleUserActiveCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.UserRepository().Get(ctx, command.UserID())
	if err != nil {
		return err
	}

	if err = aggregate.ToggleActive(); err != nil {
		return err
	}

	if err = uow.UserRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
