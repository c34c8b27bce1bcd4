package commands

import (
	"context"
	"errors"
	"time"

	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

// AddCartItemCommandHandler handles adding a book to a user's cart.
// Creates the cart lazily on the first added book.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition command.
// Verifies the book exists, then appends it to the user's cart, creating
// the cart if the user does not have one yet.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, command AddCartItemCommand) error {
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

	if _, err := uow.BookRepository().Get(ctx, command.BookID()); err != nil {
		return err
	}

	cartRepo := uow.CartRepository()

	userCart, err := cartRepo.GetByUser(ctx, command.UserID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		userCart, err = cart.NewCart(kernel.NewUUID(), command.UserID(), time.Now())
		if err != nil {
			return err
		}
		if err = userCart.AddBook(command.BookID()); err != nil {
			return err
		}
		if err = cartRepo.Add(ctx, userCart); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = userCart.AddBook(command.BookID()); err != nil {
			return err
		}
		if err = cartRepo.Update(ctx, userCart); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
