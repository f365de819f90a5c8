package commands

import (
	"context"
	"errors"
	"time"

	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// AddCartItemCommandHandler puts a product into the owner's cart, creating
// the cart on first use. The resulting line quantity is bounded by the
// current stock of the (product, variant) key as reported by the ledger.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	timeout    time.Duration
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		timeout:    defaultCommandTimeout,
	}
}

// Handle processes the command and returns the updated cart.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, command AddCartItemCommand) (*cart.Cart, error) {
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

	now := time.Now()
	cartRepo := uow.CartRepository()

	shoppingCart, err := cartRepo.GetByOwner(opCtx, command.OwnerID())
	isNewCart := errors.Is(err, errs.ErrObjectNotFound)
	if isNewCart {
		shoppingCart, err = cart.NewCart(kernel.NewUUID(), command.OwnerID(), now)
	} else if err != nil {
		return nil, classifyDependencyErr(opCtx, "cart store", err)
	}
	if err != nil {
		return nil, err
	}

	desired := command.Quantity()
	if existing, findErr := shoppingCart.FindItem(command.ProductID(), command.VariantID()); findErr == nil {
		desired += existing.Quantity()
	}
	if err = h.checkStock(opCtx, uow, command.ProductID(), command.VariantID(), desired); err != nil {
		return nil, err
	}

	item, err := cart.NewLineItem(
		command.ProductID(), command.VariantID(),
		command.ProductName(), command.ProductSKU(), command.ProductImage(),
		command.Quantity(), command.UnitPrice(),
	)
	if err != nil {
		return nil, err
	}
	if err = shoppingCart.AddItem(item, now); err != nil {
		return nil, err
	}

	if isNewCart {
		err = cartRepo.Add(opCtx, shoppingCart)
	} else {
		err = cartRepo.Update(opCtx, shoppingCart)
	}
	if err != nil {
		return nil, classifyDependencyErr(opCtx, "cart store", err)
	}

	if err = uow.Commit(opCtx); err != nil {
		return nil, classifyDependencyErr(opCtx, "cart store", err)
	}

	return shoppingCart, nil
}

func (h AddCartItemCommandHandler) checkStock(
	ctx context.Context,
	uow CartUoW,
	productID string,
	variantID string,
	desired int,
) error {
	available, err := currentStock(ctx, uow.InventoryRepository(), productID, variantID)
	if err != nil {
		return classifyDependencyErr(ctx, "inventory ledger", err)
	}
	if desired > available {
		return errs.NewValueIsOutOfRangeError("quantity", desired, 1, available)
	}
	return nil
}
