package commands

import (
	"context"
	"time"
)

// ClearCartCommandHandler empties a cart without creating an order.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
	timeout    time.Duration
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
		timeout:    defaultCommandTimeout,
	}
}

// Handle processes the command.
func (h ClearCartCommandHandler) Handle(ctx context.Context, command ClearCartCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	uow := h.uowFactory.Create()
	if err := uow.Begin(opCtx); err != nil {
		return classifyDependencyErr(opCtx, "cart store", err)
	}

	defer func() {
		_ = uow.Rollback(opCtx)
	}()

	cartRepo := uow.CartRepository()
	shoppingCart, err := cartRepo.Get(opCtx, command.CartID())
	if err != nil {
		return classifyDependencyErr(opCtx, "cart store", err)
	}

	if err = shoppingCart.Clear(time.Now()); err != nil {
		return err
	}

	if err = cartRepo.Update(opCtx, shoppingCart); err != nil {
		return classifyDependencyErr(opCtx, "cart store", err)
	}

	if err = uow.Commit(opCtx); err != nil {
		return classifyDependencyErr(opCtx, "cart store", err)
	}

	return nil
}
