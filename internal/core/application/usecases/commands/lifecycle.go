package commands

import (
	"context"
	"errors"
	"time"

	"commerce/internal/core/domain/model/inventory"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

const (
	// maxTransitionAttempts bounds the automatic reload-and-retry loop on
	// optimistic concurrency conflicts.
	maxTransitionAttempts = 3

	// defaultLifecycleTimeout bounds a single transition attempt, covering
	// the order write, ledger appends, and the notification insert.
	defaultLifecycleTimeout = 5 * time.Second
)

// currentStock reads the stock level of a (product, variant) key: the
// afterQuantity of the latest ledger entry, zero for a fresh key.
func currentStock(ctx context.Context, repo ports.InventoryRepository, productID, variantID string) (int, error) {
	latest, err := repo.GetLatest(ctx, productID, variantID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return latest.AfterQuantity(), nil
}

// appendOrderStockChanges writes one ledger entry per order item: sales
// deduct the item quantity, returns restore it. The per-key lock is taken
// before reading the latest entry so the chained before-quantity is never
// stale.
func appendOrderStockChanges(
	ctx context.Context,
	repo ports.InventoryRepository,
	aggregate *order.Order,
	txType inventory.TransactionType,
	note string,
	now time.Time,
) error {
	reference, err := inventory.NewReference(inventory.ReferenceOrder, aggregate.ID().String())
	if err != nil {
		return err
	}

	for _, item := range aggregate.Items() {
		if err = repo.LockKey(ctx, item.ProductID(), item.VariantID()); err != nil {
			return err
		}

		stock, err := currentStock(ctx, repo, item.ProductID(), item.VariantID())
		if err != nil {
			return err
		}

		change := item.Quantity()
		if txType == inventory.TypeSale {
			change = -change
		}

		transaction, err := inventory.NewTransaction(inventory.NewTransactionParams{
			ID:             kernel.NewUUID(),
			ProductID:      item.ProductID(),
			VariantID:      item.VariantID(),
			Type:           txType,
			QuantityChange: change,
			BeforeQuantity: stock,
			Reference:      reference,
			Note:           note,
		}, now)
		if err != nil {
			return err
		}

		if err = repo.Append(ctx, transaction); err != nil {
			return err
		}
	}
	return nil
}

// emitOrderNotification records the notification mapped to the order's
// current status for the order's owner. Statuses without a mapped type are
// silent; creation failure fails the surrounding transaction.
func emitOrderNotification(
	ctx context.Context,
	repo ports.NotificationRepository,
	aggregate *order.Order,
	now time.Time,
) error {
	notifType, ok := notification.TypeForOrderStatus(aggregate.Status())
	if !ok {
		return nil
	}

	n, err := notification.NewOrderNotification(
		kernel.NewUUID(),
		aggregate.OwnerID(),
		notifType,
		aggregate.Number().String(),
		"/orders/"+aggregate.ID().String(),
		now,
	)
	if err != nil {
		return err
	}

	return repo.Add(ctx, n)
}

// runLifecycleTransition loads the order, applies the status change, writes
// the ledger and notification side effects, and persists the order under
// optimistic concurrency control. A stale-version write is retried with a
// fresh load up to maxTransitionAttempts times before the conflict surfaces
// to the caller. Each attempt runs under a bounded timeout; hitting it is
// reported as a DependencyTimeoutError.
func runLifecycleTransition(
	ctx context.Context,
	uowFactory LifecycleUoWFactory,
	orderID kernel.UUID,
	timeout time.Duration,
	apply func(aggregate *order.Order, now time.Time) error,
) (*order.Order, error) {
	var lastErr error

	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		aggregate, err := attemptLifecycleTransition(ctx, uowFactory, orderID, timeout, apply)
		if err == nil {
			return aggregate, nil
		}
		if !errors.Is(err, errs.ErrConcurrencyConflict) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func attemptLifecycleTransition(
	ctx context.Context,
	uowFactory LifecycleUoWFactory,
	orderID kernel.UUID,
	timeout time.Duration,
	apply func(aggregate *order.Order, now time.Time) error,
) (*order.Order, error) {
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	uow := uowFactory.Create()
	if err := uow.Begin(opCtx); err != nil {
		return nil, classifyLifecycleErr(opCtx, err)
	}

	defer func() {
		_ = uow.Rollback(opCtx)
	}()

	aggregate, err := uow.OrderRepository().Get(opCtx, orderID)
	if err != nil {
		return nil, classifyLifecycleErr(opCtx, err)
	}

	now := time.Now()
	previous := aggregate.Status()
	if err = apply(aggregate, now); err != nil {
		return nil, err
	}

	switch {
	case aggregate.Status() == order.Paid:
		err = appendOrderStockChanges(opCtx, uow.InventoryRepository(), aggregate,
			inventory.TypeSale, "order paid", now)
	case aggregate.Status() == order.Cancelled && previous.StockCommitted():
		err = appendOrderStockChanges(opCtx, uow.InventoryRepository(), aggregate,
			inventory.TypeReturn, "order cancelled", now)
	case aggregate.Status() == order.Refunded:
		err = appendOrderStockChanges(opCtx, uow.InventoryRepository(), aggregate,
			inventory.TypeReturn, "order refunded", now)
	}
	if err != nil {
		return nil, classifyLifecycleErr(opCtx, err)
	}

	if err = emitOrderNotification(opCtx, uow.NotificationRepository(), aggregate, now); err != nil {
		return nil, classifyLifecycleErr(opCtx, err)
	}

	if err = uow.OrderRepository().Update(opCtx, aggregate); err != nil {
		return nil, classifyLifecycleErr(opCtx, err)
	}

	if err = uow.Commit(opCtx); err != nil {
		return nil, classifyLifecycleErr(opCtx, err)
	}

	return aggregate, nil
}

// classifyLifecycleErr distinguishes a timed-out attempt from a definitive
// dependency failure.
func classifyLifecycleErr(ctx context.Context, err error) error {
	return classifyDependencyErr(ctx, "order store", err)
}
