package commands_test

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/checkout"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testStagedCheckout(t *testing.T, createdAt time.Time) *checkout.CheckoutOrder {
	t.Helper()
	customer := order.Customer{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Address: "12 Analytical Row",
	}

	staged, err := checkout.NewCheckoutOrder(
		kernel.NewUUID(), kernel.NewUUID(), customer, "standard",
		[]checkout.Item{{BookID: kernel.NewUUID(), Quantity: 1, Format: book.Hardcover}},
		createdAt,
	)
	require.NoError(t, err)
	return staged
}

func TestExpireCheckoutsCommandHandler_Handle_DeletesAbandonedCheckouts(t *testing.T) {
	ctx := context.Background()
	first := testStagedCheckout(t, time.Now().Add(-2*time.Hour))
	second := testStagedCheckout(t, time.Now().Add(-3*time.Hour))

	checkoutRepo := new(MockCheckoutRepository)
	checkoutRepo.On("GetAllCreatedBefore", ctx, mock.AnythingOfType("time.Time")).
		Return([]*checkout.CheckoutOrder{first, second}, nil).Once()
	checkoutRepo.On("Delete", ctx, first.ID()).Return(nil).Once()
	checkoutRepo.On("Delete", ctx, second.ID()).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CheckoutRepository").Return(checkoutRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutSweepUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireCheckoutsCommandHandler(factory, time.Hour)
	require.NoError(t, h.Handle(ctx, commands.NewExpireCheckoutsCommand()))
	checkoutRepo.AssertExpectations(t)
}

func TestExpireCheckoutsCommandHandler_Handle_NothingAbandoned(t *testing.T) {
	ctx := context.Background()

	checkoutRepo := new(MockCheckoutRepository)
	checkoutRepo.On("GetAllCreatedBefore", ctx, mock.AnythingOfType("time.Time")).
		Return([]*checkout.CheckoutOrder{}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CheckoutRepository").Return(checkoutRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutSweepUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireCheckoutsCommandHandler(factory, time.Hour)
	require.NoError(t, h.Handle(ctx, commands.NewExpireCheckoutsCommand()))
	checkoutRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestExpireCheckoutsCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	h := commands.NewExpireCheckoutsCommandHandler(new(MockCheckoutSweepUoWFactory), time.Hour)
	err := h.Handle(context.Background(), commands.ExpireCheckoutsCommand{})
	require.ErrorIs(t, err, commands.ErrExpireCheckoutsCommandIsNotConstructed)
}
