package commands

import (
	"context"

	"bookstore/internal/core/domain/model/book"
)

// CreateBookCommandHandler handles adding new titles to the catalog.
type CreateBookCommandHandler struct {
	uowFactory BookUoWFactory
}

// NewCreateBookCommandHandler creates a handler for catalog additions.
func NewCreateBookCommandHandler(uowFactory BookUoWFactory) CreateBookCommandHandler {
	return CreateBookCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog addition command.
func (h CreateBookCommandHandler) Handle(ctx context.Context, command CreateBookCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := book.NewBook(command.BookID(), command.Attributes(), command.Prices(), command.Stock())
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

	if err = uow.BookRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
