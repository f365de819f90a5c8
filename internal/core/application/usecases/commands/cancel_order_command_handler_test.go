package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/inventory"
	"commerce/internal/core/domain/model/notification"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_AfterPaymentRestoresStock(t *testing.T) {
	ctx := t.Context()
	aggregate := paidOrder(t)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), "customer changed mind")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	uow.On("NotificationRepository").Return(notificationRepo).Once()

	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	inventoryRepo.On("LockKey", mock.Anything, "P1", "").Return(nil).Once()
	inventoryRepo.On("GetLatest", mock.Anything, "P1", "").Return(ledgerEntry(t, "P1", 8), nil).Once()
	inventoryRepo.On("Append", mock.Anything, mock.MatchedBy(func(tx *inventory.Transaction) bool {
		return tx.Type() == inventory.TypeReturn &&
			tx.QuantityChange() == 2 &&
			tx.AfterQuantity() == 10
	})).Return(nil).Once()
	notificationRepo.On("Add", mock.Anything, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Type() == notification.TypeOrderCancelled
	})).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, updated.Status())
	assert.Contains(t, updated.Note(), "cancelled: customer changed mind")
	inventoryRepo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_BeforePaymentSkipsLedger(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingOrder(t)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("NotificationRepository").Return(notificationRepo).Once()

	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	notificationRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, updated.Status())
	inventoryRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_ShippedOrderCannotBeCancelled(t *testing.T) {
	ctx := t.Context()
	aggregate := paidOrder(t)
	require.NoError(t, aggregate.TransitionTo(order.Confirmed, aggregate.UpdatedAt()))
	require.NoError(t, aggregate.TransitionTo(order.Processing, aggregate.UpdatedAt()))
	require.NoError(t, aggregate.TransitionTo(order.Shipped, aggregate.UpdatedAt()))
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), "too late")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Shipped, aggregate.Status())
}
