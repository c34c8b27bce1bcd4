package commands

import (
	"context"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler moves an order along its lifecycle.
//
// Cancellation is the one transition with an inventory side effect: the
// copies held by the order's lines go back to stock. The restock and the
// status write happen in the same transaction, so a failure in either
// leaves both untouched.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// changes. The publisher may be nil when no broker is configured.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status change command.
// The order row is locked for the duration of the transaction, so two
// concurrent transitions on the same order serialize and the loser sees
// the winner's status as its starting point.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()

	target, err := order.StatusFromString(command.Status())
	if err != nil {
		return order.NewInvalidStatusTransitionError(previous, command.Status())
	}

	if err = aggregate.TransitionTo(target); err != nil {
		return err
	}

	if target == order.Cancelled {
		if err = h.releaseStock(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		_ = h.publisher.PublishOrderStatusChanged(ctx, aggregate, previous)
	}

	return nil
}

// releaseStock returns every line's copies to stock. Book rows are locked
// in ascending id order, same as checkout commit, so cancels and commits
// touching the same books cannot deadlock.
func (h UpdateOrderStatusCommandHandler) releaseStock(ctx context.Context,
	uow OrderUoW, aggregate *order.Order) error {
	lines := aggregate.Lines()

	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.BookID())
	}

	bookRepo := uow.BookRepository()
	books, err := bookRepo.GetForUpdate(ctx, ids)
	if err != nil {
		return err
	}

	booksByID := make(map[kernel.UUID]*book.Book, len(books))
	for _, b := range books {
		booksByID[b.ID()] = b
	}

	for _, line := range lines {
		b, found := booksByID[line.BookID()]
		if !found {
			return errs.NewObjectNotFoundError("bookID", line.BookID())
		}
		if err = b.Release(line.Quantity()); err != nil {
			return err
		}
		if err = bookRepo.Update(ctx, b); err != nil {
			return err
		}
	}

	return nil
}
