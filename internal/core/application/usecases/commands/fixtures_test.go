package commands_test

import (
	"testing"
	"time"

	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/inventory"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) order.Address {
	t.Helper()
	addr, err := order.NewAddress("Jamie Doe", "555-0100", "1 Main St", "", "Springfield", "12345", "US")
	require.NoError(t, err)
	return addr
}

func cartWithItems(t *testing.T, ownerID string) *cart.Cart {
	t.Helper()
	now := time.Now()
	c, err := cart.NewCart(kernel.NewUUID(), ownerID, now)
	require.NoError(t, err)

	item, err := cart.NewLineItem("P1", "", "Widget", "SKU-1", "", 2, kernel.NewMoneyFromInt(600))
	require.NoError(t, err)
	require.NoError(t, c.AddItem(item, now))
	return c
}

func emptyCart(t *testing.T, ownerID string) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), ownerID, time.Now())
	require.NoError(t, err)
	return c
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	now := time.Now()
	id := kernel.NewUUID()
	number, err := order.NewNumber(now, 1)
	require.NoError(t, err)

	item, err := order.NewItem(
		kernel.NewUUID(), id,
		"P1", "", "Widget", "SKU-1", "",
		2, kernel.NewMoneyFromInt(600), kernel.ZeroMoney(),
	)
	require.NoError(t, err)

	totals, err := order.NewTotals(
		kernel.NewMoneyFromInt(1200), kernel.ZeroMoney(),
		kernel.NewMoneyFromInt(60), kernel.ZeroMoney(),
	)
	require.NoError(t, err)

	o, err := order.NewOrder(id, number, "user-1", []*order.Item{item}, totals, testAddress(t), nil, "", now)
	require.NoError(t, err)
	return o
}

func paidOrder(t *testing.T) *order.Order {
	t.Helper()
	o := pendingOrder(t)
	require.NoError(t, o.TransitionTo(order.Paid, time.Now()))
	return o
}

func ledgerEntry(t *testing.T, productID string, afterQuantity int) *inventory.Transaction {
	t.Helper()
	ref, err := inventory.NewReference(inventory.ReferenceSystem, "")
	require.NoError(t, err)

	tx, err := inventory.RestoreTransaction(
		kernel.NewUUID(), productID, "", inventory.TypeInitial,
		afterQuantity, 0, afterQuantity, ref, "seed", time.Now(),
	)
	require.NoError(t, err)
	return tx
}
