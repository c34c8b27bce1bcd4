package commands_test

import (
	"context"
	"testing"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleUserActiveCommandHandler_Handle_SuspendsAccount(t *testing.T) {
	ctx := context.Background()
	account := testAccount(t, "correct horse battery")
	require.True(t, account.IsActive())

	userRepo := new(MockUserRepository)
	userRepo.On("Get", ctx, account.ID()).Return(account, nil).Once()
	userRepo.On("Update", ctx, account).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewToggleUserActiveCommand(account.ID())
	require.NoError(t, err)

	h := commands.NewToggleUserActiveCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.False(t, account.IsActive())
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestToggleUserActiveCommandHandler_Handle_ReactivatesSuspendedAccount(t *testing.T) {
	ctx := context.Background()
	account := testAccount(t, "correct horse battery")
	require.NoError(t, account.ToggleActive())
	require.False(t, account.IsActive())

	userRepo := new(MockUserRepository)
	userRepo.On("Get", ctx, account.ID()).Return(account, nil).Once()
	userRepo.On("Update", ctx, account).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewToggleUserActiveCommand(account.ID())
	require.NoError(t, err)

	h := commands.NewToggleUserActiveCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.True(t, account.IsActive())
}

func TestToggleUserActiveCommandHandler_Handle_UnknownAccount(t *testing.T) {
	ctx := context.Background()
	userID := kernel.NewUUID()

	userRepo := new(MockUserRepository)
	userRepo.On("Get", ctx, userID).
		Return(nil, errs.NewObjectNotFoundError("userID", userID)).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewToggleUserActiveCommand(userID)
	require.NoError(t, err)

	h := commands.NewToggleUserActiveCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestToggleUserActiveCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	h := commands.NewToggleUserActiveCommandHandler(new(MockUserUoWFactory))
	err := h.Handle(context.Background(), commands.ToggleUserActiveCommand{})
	require.ErrorIs(t, err, commands.ErrToggleUserActiveCommandIsNotConstructed)
}
