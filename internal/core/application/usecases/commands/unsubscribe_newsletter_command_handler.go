package commands

import (
	"context"
)

// UnsubscribeNewsletterCommandHandler handles mailing list removals.
type UnsubscribeNewsletterCommandHandler struct {
	uowFactory NewsletterUoWFactory
}

// NewUnsubscribeNewsletterCommandHandler creates a handler for removals.
func NewUnsubscribeNewsletterCommandHandler(uowFactory NewsletterUoWFactory) UnsubscribeNewsletterCommandHandler {
	return UnsubscribeNewsletterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command. Removing an address that is not
// subscribed returns the repository's not-found error.
func (h UnsubscribeNewsletterCommandHandler) Handle(ctx context.Context, command UnsubscribeNewsletterCommand) error {
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

	newsletterRepo := uow.NewsletterRepository()

	if _, err := newsletterRepo.GetByEmail(ctx, command.Email()); err != nil {
		return err
	}

	if err := newsletterRepo.Delete(ctx, command.Email()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
