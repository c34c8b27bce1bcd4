package commands

import (
	"context"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/newsletter"
)

// SubscribeNewsletterCommandHandler handles mailing list signups.
// Duplicate signups surface the storage layer's uniqueness error.
type SubscribeNewsletterCommandHandler struct {
	uowFactory NewsletterUoWFactory
}

// NewSubscribeNewsletterCommandHandler creates a handler for signups.
func NewSubscribeNewsletterCommandHandler(uowFactory NewsletterUoWFactory) SubscribeNewsletterCommandHandler {
	return SubscribeNewsletterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the signup command.
func (h SubscribeNewsletterCommandHandler) Handle(ctx context.Context, command SubscribeNewsletterCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	subscription, err := newsletter.NewSubscription(kernel.NewUUID(), command.Email(), time.Now())
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

	if err = uow.NewsletterRepository().Add(ctx, subscription); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
