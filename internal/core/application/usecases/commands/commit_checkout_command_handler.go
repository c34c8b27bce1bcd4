package commands

import (
	"context"
	"errors"
	"time"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/errs"
)

// ShippingRates maps a shipping method name to its flat price.
type ShippingRates map[string]kernel.Cents

// CommitCheckoutCommandHandler places an order from a staged checkout.
//
// The whole commit runs in one transaction. Every book in the checkout is
// locked with a row-level lock, acquired in ascending book id order so two
// commits touching the same books cannot deadlock. Stock is checked under
// those locks; if any line cannot be covered the transaction rolls back
// untouched and the caller gets a single OutOfStockError listing every
// short line, not just the first one.
type CommitCheckoutCommandHandler struct {
	uowFactory    CommitCheckoutUoWFactory
	publisher     ports.OrderEventPublisher
	shippingRates ShippingRates
	taxRateBps    int
}

// NewCommitCheckoutCommandHandler creates a handler for checkout commits.
// taxRateBps is the sales tax rate in basis points applied to the goods
// subtotal. The publisher may be nil when no broker is configured.
func NewCommitCheckoutCommandHandler(uowFactory CommitCheckoutUoWFactory,
	publisher ports.OrderEventPublisher, shippingRates ShippingRates,
	taxRateBps int) CommitCheckoutCommandHandler {
	return CommitCheckoutCommandHandler{
		uowFactory:    uowFactory,
		publisher:     publisher,
		shippingRates: shippingRates,
		taxRateBps:    taxRateBps,
	}
}

// Handle processes the commit command.
// On success the staged checkout and the user's cart are gone, stock is
// decremented, and a Pending order exists. On any failure nothing changes.
func (h CommitCheckoutCommandHandler) Handle(ctx context.Context, command CommitCheckoutCommand) error {
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

	staged, err := uow.CheckoutRepository().Get(ctx, command.CheckoutID())
	if err != nil {
		return err
	}
	if !staged.UserID().IsEqual(command.UserID()) {
		return errs.NewObjectNotFoundError("checkoutID", command.CheckoutID())
	}

	shippingAmount, ok := h.shippingRates[staged.ShippingMethod()]
	if !ok {
		return errs.NewValueIsInvalidError("shippingMethod")
	}

	items := staged.Items()
	ids := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.BookID)
	}

	bookRepo := uow.BookRepository()
	locked, err := bookRepo.GetForUpdate(ctx, ids)
	if err != nil {
		return err
	}

	booksByID := make(map[kernel.UUID]*book.Book, len(locked))
	for _, b := range locked {
		booksByID[b.ID()] = b
	}

	lines := make([]order.Line, 0, len(items))
	var shortages []book.Shortage
	var subtotal kernel.Cents
	for _, item := range items {
		b, found := booksByID[item.BookID]
		if !found {
			return errs.NewObjectNotFoundError("bookID", item.BookID)
		}

		if shortage := b.ShortageFor(item.Quantity); shortage != nil {
			shortages = append(shortages, *shortage)
			continue
		}

		price, priceErr := b.PriceFor(item.Format)
		if priceErr != nil {
			return priceErr
		}

		line, lineErr := order.NewLine(item.BookID, item.Quantity, item.Format.String(), price)
		if lineErr != nil {
			return lineErr
		}
		lines = append(lines, line)
		subtotal = subtotal.Add(line.Subtotal())
	}

	if len(shortages) > 0 {
		return book.NewOutOfStockError(shortages...)
	}

	for _, item := range items {
		b := booksByID[item.BookID]
		if err = b.Reserve(item.Quantity); err != nil {
			return err
		}
		if err = bookRepo.Update(ctx, b); err != nil {
			return err
		}
	}

	taxes := kernel.Cents(int64(subtotal) * int64(h.taxRateBps) / 10000)

	placed, err := order.NewOrder(
		command.OrderID(),
		command.UserID(),
		staged.Customer(),
		staged.ShippingMethod(),
		shippingAmount,
		taxes,
		lines,
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	if err = uow.CheckoutRepository().Delete(ctx, staged.ID()); err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetByUser(ctx, command.UserID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// nothing to drop
	case err != nil:
		return err
	default:
		if err = cartRepo.Delete(ctx, userCart.ID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		_ = h.publisher.PublishOrderCreated(ctx, placed)
	}

	return nil
}
