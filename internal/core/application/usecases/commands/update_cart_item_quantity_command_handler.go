package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/cart"
	"commerce/internal/pkg/errs"
)

// UpdateCartItemQuantityCommandHandler changes the quantity of a cart line
// item within [1, availableStock]; the available stock is the ledger's
// current level for the (product, variant) key.
type UpdateCartItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
	timeout    time.Duration
}

// NewUpdateCartItemQuantityCommandHandler creates a handler for quantity updates.
func NewUpdateCartItemQuantityCommandHandler(uowFactory CartUoWFactory) UpdateCartItemQuantityCommandHandler {
	return UpdateCartItemQuantityCommandHandler{
		uowFactory: uowFactory,
		timeout:    defaultCommandTimeout,
	}
}

// Handle processes the command and returns the updated cart.
func (h UpdateCartItemQuantityCommandHandler) Handle(ctx context.Context, command UpdateCartItemQuantityCommand) (*cart.Cart, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	uow := h.uowFactory.Create()
	if err := uow.Begin(opCtx); err != nil {
		return nil, classifyDependencyErr(opCtx, "cart store", err)
	}

	defer func() {
		_ = uow.Rollback(opCtx)
	}()

	cartRepo := uow.CartRepository()
	shoppingCart, err := cartRepo.Get(opCtx, command.CartID())
	if err != nil {
		return nil, classifyDependencyErr(opCtx, "cart store", err)
	}

	available, err := currentStock(opCtx, uow.InventoryRepository(), command.ProductID(), command.VariantID())
	if err != nil {
		return nil, classifyDependencyErr(opCtx, "inventory ledger", err)
	}
	if command.Quantity() > available {
		return nil, errs.NewValueIsOutOfRangeError("quantity", command.Quantity(), 1, available)
	}

	now := time.Now()
	if err = shoppingCart.UpdateItemQuantity(command.ProductID(), command.VariantID(), command.Quantity(), now); err != nil {
		return nil, err
	}

	if err = cartRepo.Update(opCtx, shoppingCart); err != nil {
		return nil, classifyDependencyErr(opCtx, "cart store", err)
	}

	if err = uow.Commit(opCtx); err != nil {
		return nil, classifyDependencyErr(opCtx, "cart store", err)
	}

	return shoppingCart, nil
}
