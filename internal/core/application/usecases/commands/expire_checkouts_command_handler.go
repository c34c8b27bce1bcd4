package commands

import (
	"context"
	"time"
)

// ExpireCheckoutsCommandHandler drops staged checkouts that were never
// committed. Checkouts hold no reservations, so sweeping them frees
// nothing but table rows.
type ExpireCheckoutsCommandHandler struct {
	uowFactory CheckoutSweepUoWFactory
	ttl        time.Duration
}

// NewExpireCheckoutsCommandHandler creates a handler for the sweep.
// ttl is how long a staged checkout may sit before it counts as abandoned.
func NewExpireCheckoutsCommandHandler(uowFactory CheckoutSweepUoWFactory,
	ttl time.Duration) ExpireCheckoutsCommandHandler {
	return ExpireCheckoutsCommandHandler{
		uowFactory: uowFactory,
		ttl:        ttl,
	}
}

// Handle processes the sweep command.
func (h ExpireCheckoutsCommandHandler) Handle(ctx context.Context, command ExpireCheckoutsCommand) error {
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

	checkoutRepo := uow.CheckoutRepository()

	abandoned, err := checkoutRepo.GetAllCreatedBefore(ctx, time.Now().Add(-h.ttl))
	if err != nil {
		return err
	}

	for _, staged := range abandoned {
		if err = checkoutRepo.Delete(ctx, staged.ID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
