package commands

import (
	"context"
)

// RemoveCartItemCommandHandler handles removing a book from a user's cart.
// An emptied cart is deleted rather than kept around.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart removals.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart removal command.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, command RemoveCartItemCommand) error {
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

	cartRepo := uow.CartRepository()

	userCart, err := cartRepo.GetByUser(ctx, command.UserID())
	if err != nil {
		return err
	}

	if err = userCart.RemoveBook(command.BookID()); err != nil {
		return err
	}

	if userCart.IsEmpty() {
		err = cartRepo.Delete(ctx, userCart.ID())
	} else {
		err = cartRepo.Update(ctx, userCart)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
