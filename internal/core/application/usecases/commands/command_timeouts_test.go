package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/inventory"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/services"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expiredContext returns a context whose deadline has already passed, so the
// unit of work opened under it fails the way a stalled store would.
func expiredContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	t.Cleanup(cancel)
	return ctx
}

func timedOutUoW(t *testing.T) *MockUoW {
	t.Helper()
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(context.DeadlineExceeded).Once()
	return uow
}

func TestCreateOrderCommandHandler_Handle_DeadlineSurfacesAsDependencyTimeout(t *testing.T) {
	ctx := expiredContext(t)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), testAddress(t), "pm-1", nil, "",
	)
	require.NoError(t, err)

	uow := timedOutUoW(t)
	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingEngine())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDependencyTimeout)
	uow.AssertExpectations(t)
}

func TestCartCommandHandlers_Handle_DeadlineSurfacesAsDependencyTimeout(t *testing.T) {
	ctx := expiredContext(t)

	t.Run("add_item", func(t *testing.T) {
		uow := timedOutUoW(t)
		factory := new(MockCartUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAddCartItemCommandHandler(factory)
		_, err := h.Handle(ctx, addItemCommand(t, 1))

		require.ErrorIs(t, err, errs.ErrDependencyTimeout)
	})

	t.Run("update_item_quantity", func(t *testing.T) {
		cmd, err := commands.NewUpdateCartItemQuantityCommand(kernel.NewUUID(), "P1", "", 2)
		require.NoError(t, err)

		uow := timedOutUoW(t)
		factory := new(MockCartUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateCartItemQuantityCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDependencyTimeout)
	})

	t.Run("remove_item", func(t *testing.T) {
		cmd, err := commands.NewRemoveCartItemCommand(kernel.NewUUID(), "P1", "")
		require.NoError(t, err)

		uow := timedOutUoW(t)
		factory := new(MockCartUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRemoveCartItemCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDependencyTimeout)
	})

	t.Run("clear", func(t *testing.T) {
		cmd, err := commands.NewClearCartCommand(kernel.NewUUID())
		require.NoError(t, err)

		uow := timedOutUoW(t)
		factory := new(MockCartUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewClearCartCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDependencyTimeout)
	})
}

func TestAppendInventoryCommandHandler_Handle_DeadlineSurfacesAsDependencyTimeout(t *testing.T) {
	ctx := expiredContext(t)
	cmd, err := commands.NewAppendInventoryCommand(
		"P1", "", inventory.TypeAdjustment, -1, manualReference(t), "", false,
	)
	require.NoError(t, err)

	t.Run("on_begin", func(t *testing.T) {
		uow := timedOutUoW(t)
		factory := new(MockInventoryUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAppendInventoryCommandHandler(factory)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDependencyTimeout)
	})

	t.Run("on_key_lock", func(t *testing.T) {
		inventoryRepo := new(MockInventoryRepository)
		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("Rollback", mock.Anything).Return(nil).Once()
		uow.On("InventoryRepository").Return(inventoryRepo).Once()
		inventoryRepo.On("LockKey", mock.Anything, "P1", "").Return(context.DeadlineExceeded).Once()

		factory := new(MockInventoryUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAppendInventoryCommandHandler(factory)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDependencyTimeout)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestMarkAllNotificationsReadCommandHandler_Handle_DeadlineSurfacesAsDependencyTimeout(t *testing.T) {
	ctx := expiredContext(t)
	cmd, err := commands.NewMarkAllNotificationsReadCommand("user-1")
	require.NoError(t, err)

	uow := timedOutUoW(t)
	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkAllNotificationsReadCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDependencyTimeout)
}

func TestClearCartCommandHandler_Handle_PlainFailureIsNotATimeout(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewClearCartCommand(kernel.NewUUID())
	require.NoError(t, err)

	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(errors.New("connection refused")).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClearCartCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.NotErrorIs(t, err, errs.ErrDependencyTimeout)
}
