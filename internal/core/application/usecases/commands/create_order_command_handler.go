package commands

import (
	"context"
	"errors"
	"time"

	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"
	"commerce/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Commits a cart snapshot into a pending order: prices the items, requests a
// day-scoped order number, persists the order with its item snapshots,
// records the order_created notification, and clears the cart — all inside a
// single transaction. A failure of any step, the notification included,
// rolls the whole creation back. The transaction runs under a bounded
// timeout; hitting it is reported as a DependencyTimeoutError.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	pricing    services.PricingEngine
	timeout    time.Duration
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a CheckoutUoWFactory for transactional persistence and the
// pricing engine for totals.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory, pricing services.PricingEngine) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		timeout:    defaultCommandTimeout,
	}
}

// Handle processes the order creation command and returns the created order.
// Fails with an EmptyCartError when the cart has no items; an exhausted day
// sequence surfaces as a SequenceExhaustedError and halts creation.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	uow := h.uowFactory.Create()
	if err := uow.Begin(opCtx); err != nil {
		return nil, classifyDependencyErr(opCtx, "order store", err)
	}

	defer func() {
		_ = uow.Rollback(opCtx)
	}()

	cartRepo := uow.CartRepository()
	shoppingCart, err := cartRepo.Get(opCtx, command.CartID())
	if err != nil {
		return nil, classifyDependencyErr(opCtx, "cart store", err)
	}
	if shoppingCart.IsEmpty() {
		return nil, errs.NewEmptyCartError(shoppingCart.ID())
	}

	totals, err := h.pricing.Price(shoppingCart.Items(), kernel.ZeroMoney())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	authority, err := services.NewOrderNumberingAuthority(uow.SequenceStore())
	if err != nil {
		return nil, err
	}
	number, err := authority.Ensure(opCtx, command.ExplicitNumber(), now)
	if err != nil {
		return nil, classifyDependencyErr(opCtx, "order number sequence", err)
	}

	items, err := buildOrderItems(command.OrderID(), shoppingCart)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		command.OrderID(), number, shoppingCart.OwnerID(),
		items, totals, command.Address(),
		command.PromotionCodes(), command.Note(), now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(opCtx, aggregate); err != nil {
		return nil, classifyDependencyErr(opCtx, "order store", err)
	}

	if err = emitOrderNotification(opCtx, uow.NotificationRepository(), aggregate, now); err != nil {
		if errors.Is(opCtx.Err(), context.DeadlineExceeded) {
			return nil, errs.NewDependencyTimeoutError("notification store", err)
		}
		return nil, errs.NewDependencyFailureError("notification store", err)
	}

	if err = shoppingCart.Clear(now); err != nil {
		return nil, err
	}
	if err = cartRepo.Update(opCtx, shoppingCart); err != nil {
		return nil, classifyDependencyErr(opCtx, "cart store", err)
	}

	if err = uow.Commit(opCtx); err != nil {
		return nil, classifyDependencyErr(opCtx, "order store", err)
	}

	return aggregate, nil
}

// buildOrderItems snapshots the cart's line items into immutable order items.
func buildOrderItems(orderID kernel.UUID, shoppingCart *cart.Cart) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(shoppingCart.Items()))
	for _, lineItem := range shoppingCart.Items() {
		item, err := order.NewItem(
			kernel.NewUUID(), orderID,
			lineItem.ProductID(), lineItem.VariantID(),
			lineItem.ProductName(), lineItem.ProductSKU(), lineItem.ProductImage(),
			lineItem.Quantity(), lineItem.UnitPrice(), kernel.ZeroMoney(),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
