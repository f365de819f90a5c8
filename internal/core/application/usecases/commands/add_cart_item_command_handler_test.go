package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func addItemCommand(t *testing.T, quantity int) commands.AddCartItemCommand {
	t.Helper()
	cmd, err := commands.NewAddCartItemCommand(
		"user-1", "P1", "", "Widget", "SKU-1", "",
		quantity, kernel.NewMoneyFromInt(600),
	)
	require.NoError(t, err)
	return cmd
}

func TestAddCartItemCommandHandler_Handle_CreatesCartOnFirstAdd(t *testing.T) {
	ctx := t.Context()
	cmd := addItemCommand(t, 2)

	cartRepo := new(MockCartRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	cartRepo.On("GetByOwner", mock.Anything, "user-1").
		Return(nil, errs.NewObjectNotFoundError("ownerID", "user-1")).Once()
	inventoryRepo.On("GetLatest", mock.Anything, "P1", "").Return(ledgerEntry(t, "P1", 10), nil).Once()
	cartRepo.On("Add", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	shoppingCart, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, shoppingCart.Items(), 1)
	assert.Equal(t, 2, shoppingCart.Items()[0].Quantity())
	cartRepo.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_MergesIntoExistingCart(t *testing.T) {
	ctx := t.Context()
	existing := cartWithItems(t, "user-1") // already holds 2 x P1
	cmd := addItemCommand(t, 3)

	cartRepo := new(MockCartRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	cartRepo.On("GetByOwner", mock.Anything, "user-1").Return(existing, nil).Once()
	inventoryRepo.On("GetLatest", mock.Anything, "P1", "").Return(ledgerEntry(t, "P1", 10), nil).Once()
	cartRepo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	shoppingCart, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, shoppingCart.Items(), 1)
	assert.Equal(t, 5, shoppingCart.Items()[0].Quantity())
}

func TestAddCartItemCommandHandler_Handle_RejectsQuantityBeyondStock(t *testing.T) {
	ctx := t.Context()
	existing := cartWithItems(t, "user-1") // already holds 2 x P1
	cmd := addItemCommand(t, 3)            // desired total 5, only 4 in stock

	cartRepo := new(MockCartRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	cartRepo.On("GetByOwner", mock.Anything, "user-1").Return(existing, nil).Once()
	inventoryRepo.On("GetLatest", mock.Anything, "P1", "").Return(ledgerEntry(t, "P1", 4), nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Len(t, existing.Items(), 1)
	assert.Equal(t, 2, existing.Items()[0].Quantity(), "cart must stay unchanged")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateCartItemQuantityCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	existing := cartWithItems(t, "user-1")

	t.Run("updates_within_stock", func(t *testing.T) {
		cmd, err := commands.NewUpdateCartItemQuantityCommand(existing.ID(), "P1", "", 4)
		require.NoError(t, err)

		cartRepo := new(MockCartRepository)
		inventoryRepo := new(MockInventoryRepository)
		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("Rollback", mock.Anything).Return(nil).Once()
		uow.On("CartRepository").Return(cartRepo).Once()
		uow.On("InventoryRepository").Return(inventoryRepo).Once()
		cartRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
		inventoryRepo.On("GetLatest", mock.Anything, "P1", "").Return(ledgerEntry(t, "P1", 10), nil).Once()
		cartRepo.On("Update", mock.Anything, existing).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()

		factory := new(MockCartUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateCartItemQuantityCommandHandler(factory)
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 4, updated.Items()[0].Quantity())
	})

	t.Run("rejects_quantity_beyond_stock", func(t *testing.T) {
		cmd, err := commands.NewUpdateCartItemQuantityCommand(existing.ID(), "P1", "", 9)
		require.NoError(t, err)

		cartRepo := new(MockCartRepository)
		inventoryRepo := new(MockInventoryRepository)
		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("Rollback", mock.Anything).Return(nil).Once()
		uow.On("CartRepository").Return(cartRepo).Once()
		uow.On("InventoryRepository").Return(inventoryRepo).Once()
		cartRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
		inventoryRepo.On("GetLatest", mock.Anything, "P1", "").Return(ledgerEntry(t, "P1", 4), nil).Once()

		factory := new(MockCartUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateCartItemQuantityCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
