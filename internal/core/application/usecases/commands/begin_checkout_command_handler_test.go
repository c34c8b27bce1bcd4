package commands_test

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/domain/model/checkout"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func beginCheckoutCommandFixture(t *testing.T, userID, bookID kernel.UUID) commands.BeginCheckoutCommand {
	t.Helper()
	cmd, err := commands.NewBeginCheckoutCommand(kernel.NewUUID(), userID,
		order.Customer{
			Name:    "Ada Lovelace",
			Email:   "ada@example.com",
			Address: "12 Analytical Row",
		},
		"standard",
		[]commands.BeginCheckoutItem{{BookID: bookID, Quantity: 1, Format: book.Hardcover.String()}},
	)
	require.NoError(t, err)
	return cmd
}

func TestBeginCheckoutCommandHandler_Handle_StagesCheckout(t *testing.T) {
	ctx := context.Background()
	userID := kernel.NewUUID()
	bookID := kernel.NewUUID()
	userCart, err := cart.RestoreCart(kernel.NewUUID(), userID, []kernel.UUID{bookID}, time.Now())
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	cartRepo.On("GetByUser", ctx, userID).Return(userCart, nil).Once()

	var staged *checkout.CheckoutOrder
	checkoutRepo := new(MockCheckoutRepository)
	checkoutRepo.On("DeleteByUser", ctx, userID).Return(nil).Once()
	checkoutRepo.On("Add", ctx, mock.AnythingOfType("*checkout.CheckoutOrder")).
		Run(func(args mock.Arguments) { staged = args.Get(1).(*checkout.CheckoutOrder) }).
		Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo)
	uow.On("CheckoutRepository").Return(checkoutRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd := beginCheckoutCommandFixture(t, userID, bookID)

	h := commands.NewBeginCheckoutCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, staged)
	assert.True(t, staged.UserID().IsEqual(userID))
	checkoutRepo.AssertExpectations(t)
}

// Staging twice must leave the user with one checkout: the handler drops
// any previous staging row inside the same transaction before adding the
// new one.
func TestBeginCheckoutCommandHandler_Handle_ReplacesPreviousStaging(t *testing.T) {
	ctx := context.Background()
	userID := kernel.NewUUID()
	bookID := kernel.NewUUID()
	userCart, err := cart.RestoreCart(kernel.NewUUID(), userID, []kernel.UUID{bookID}, time.Now())
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	cartRepo.On("GetByUser", ctx, userID).Return(userCart, nil).Twice()

	checkoutRepo := new(MockCheckoutRepository)
	checkoutRepo.On("DeleteByUser", ctx, userID).Return(nil).Twice()
	checkoutRepo.On("Add", ctx, mock.AnythingOfType("*checkout.CheckoutOrder")).Return(nil).Twice()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("CartRepository").Return(cartRepo)
	uow.On("CheckoutRepository").Return(checkoutRepo)
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := commands.NewBeginCheckoutCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, beginCheckoutCommandFixture(t, userID, bookID)))
	require.NoError(t, h.Handle(ctx, beginCheckoutCommandFixture(t, userID, bookID)))

	checkoutRepo.AssertExpectations(t)
}

func TestBeginCheckoutCommandHandler_Handle_BookNotInCart(t *testing.T) {
	ctx := context.Background()
	userID := kernel.NewUUID()
	userCart, err := cart.RestoreCart(kernel.NewUUID(), userID, []kernel.UUID{kernel.NewUUID()}, time.Now())
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	cartRepo.On("GetByUser", ctx, userID).Return(userCart, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBeginCheckoutCommandHandler(factory)
	err = h.Handle(ctx, beginCheckoutCommandFixture(t, userID, kernel.NewUUID()))
	require.ErrorIs(t, err, commands.ErrBookIsNotInCart)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
