package commands

import (
	"context"
	"errors"
	"time"

	"bookstore/internal/core/domain/model/checkout"
	"bookstore/internal/pkg/errs"
)

var ErrBookIsNotInCart = errors.New("book is not in cart")

// BeginCheckoutCommandHandler stages a checkout from the user's cart.
// The staged checkout is a snapshot of what the user intends to buy;
// stock is neither checked nor reserved until commit.
type BeginCheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewBeginCheckoutCommandHandler creates a handler for checkout staging.
func NewBeginCheckoutCommandHandler(uowFactory CheckoutUoWFactory) BeginCheckoutCommandHandler {
	return BeginCheckoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the staging command.
// Every requested book must currently be in the user's cart. The cart
// itself survives staging and is dropped when the checkout commits.
// A user holds at most one staged checkout; staging again replaces the
// previous one in the same transaction.
func (h BeginCheckoutCommandHandler) Handle(ctx context.Context, command BeginCheckoutCommand) error {
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

	userCart, err := uow.CartRepository().GetByUser(ctx, command.UserID())
	if err != nil {
		return err
	}

	items := command.Items()
	for _, item := range items {
		if !userCart.Contains(item.BookID) {
			return errs.NewObjectNotFoundErrorWithCause("bookID", item.BookID, ErrBookIsNotInCart)
		}
	}

	staged, err := checkout.NewCheckoutOrder(
		command.CheckoutID(),
		command.UserID(),
		command.Customer(),
		command.ShippingMethod(),
		items,
		time.Now(),
	)
	if err != nil {
		return err
	}

	checkoutRepo := uow.CheckoutRepository()
	if err = checkoutRepo.DeleteByUser(ctx, command.UserID()); err != nil {
		return err
	}

	if err = checkoutRepo.Add(ctx, staged); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
