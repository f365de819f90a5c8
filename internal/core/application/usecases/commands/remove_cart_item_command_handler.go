package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/cart"
)

// RemoveCartItemCommandHandler drops a line item from the cart.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	timeout    time.Duration
}

// NewRemoveCartItemCommandHandler creates a handler for item removal.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
		timeout:    defaultCommandTimeout,
	}
}

// Handle processes the command and returns the updated cart.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, command RemoveCartItemCommand) (*cart.Cart, error) {
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

	if err = shoppingCart.RemoveItem(command.ProductID(), command.VariantID(), time.Now()); err != nil {
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
