package order_test

import (
	"testing"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) order.Address {
	t.Helper()
	addr, err := order.NewAddress("Jamie Doe", "555-0100", "1 Main St", "", "Springfield", "12345", "US")
	require.NoError(t, err)
	return addr
}

func testItems(t *testing.T, orderID kernel.UUID) []*order.Item {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(), orderID,
		"P1", "", "Widget", "SKU-1", "widget.png",
		2, kernel.NewMoneyFromInt(600), kernel.ZeroMoney(),
	)
	require.NoError(t, err)
	return []*order.Item{item}
}

func testTotals(t *testing.T) order.Totals {
	t.Helper()
	totals, err := order.NewTotals(
		kernel.NewMoneyFromInt(1200), // subtotal
		kernel.ZeroMoney(),           // shipping
		kernel.NewMoneyFromInt(60),   // tax
		kernel.ZeroMoney(),           // discount
	)
	require.NoError(t, err)
	return totals
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)
	id := kernel.NewUUID()
	number, err := order.NewNumber(now, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(id, number, "user-1", testItems(t, id), testTotals(t), testAddress(t), nil, "", now)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order_at_version_1", func(t *testing.T) {
		o := testOrder(t)

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 1, o.Version())
		assert.Equal(t, "ORD-20250831-00001", o.Number().String())
		assert.Nil(t, o.PaidAt())
		require.NoError(t, o.Validate())
	})

	t.Run("requires_items", func(t *testing.T) {
		now := time.Now()
		number, _ := order.NewNumber(now, 1)

		_, err := order.NewOrder(kernel.NewUUID(), number, "user-1", nil, testTotals(t), testAddress(t), nil, "", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_owner", func(t *testing.T) {
		now := time.Now()
		id := kernel.NewUUID()
		number, _ := order.NewNumber(now, 1)

		_, err := order.NewOrder(id, number, "", testItems(t, id), testTotals(t), testAddress(t), nil, "", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_order_number", func(t *testing.T) {
		now := time.Now()
		id := kernel.NewUUID()

		_, err := order.NewOrder(id, order.Number{}, "user-1", testItems(t, id), testTotals(t), testAddress(t), nil, "", now)

		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("pending_to_paid_stamps_timestamp_and_bumps_version", func(t *testing.T) {
		o := testOrder(t)
		paidTime := o.CreatedAt().Add(time.Hour)

		require.NoError(t, o.TransitionTo(order.Paid, paidTime))

		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, 2, o.Version())
		require.NotNil(t, o.PaidAt())
		assert.Equal(t, paidTime, *o.PaidAt())
		assert.Equal(t, paidTime, o.UpdatedAt())
	})

	t.Run("illegal_transition_leaves_order_unchanged", func(t *testing.T) {
		o := testOrder(t)
		before := o.UpdatedAt()

		err := o.TransitionTo(order.Shipped, before.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 1, o.Version())
		assert.Equal(t, before, o.UpdatedAt())
		assert.Nil(t, o.ShippedAt())
	})

	t.Run("walks_the_full_happy_path", func(t *testing.T) {
		o := testOrder(t)
		now := o.CreatedAt()

		for _, next := range []order.Status{
			order.Paid, order.Confirmed, order.Processing,
			order.Shipped, order.Delivered, order.Completed,
		} {
			now = now.Add(time.Hour)
			require.NoError(t, o.TransitionTo(next, now))
		}

		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, 7, o.Version())
		assert.NotNil(t, o.PaidAt())
		assert.NotNil(t, o.ConfirmedAt())
		assert.NotNil(t, o.ShippedAt())
		assert.NotNil(t, o.DeliveredAt())
		assert.NotNil(t, o.CompletedAt())
	})

	t.Run("shipped_marks_items_shipped", func(t *testing.T) {
		o := testOrder(t)
		now := o.CreatedAt()

		for _, next := range []order.Status{order.Paid, order.Confirmed, order.Processing, order.Shipped} {
			now = now.Add(time.Hour)
			require.NoError(t, o.TransitionTo(next, now))
		}

		for _, item := range o.Items() {
			assert.True(t, item.IsShipped())
			assert.False(t, item.IsReturned())
		}
	})

	t.Run("cancel_after_payment_marks_items_returned", func(t *testing.T) {
		o := testOrder(t)
		now := o.CreatedAt()
		require.NoError(t, o.TransitionTo(order.Paid, now.Add(time.Hour)))

		require.NoError(t, o.TransitionTo(order.Cancelled, now.Add(2*time.Hour)))

		for _, item := range o.Items() {
			assert.True(t, item.IsReturned())
		}
		assert.NotNil(t, o.CancelledAt())
	})

	t.Run("cancel_before_payment_does_not_mark_items_returned", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.TransitionTo(order.Cancelled, o.CreatedAt().Add(time.Hour)))

		for _, item := range o.Items() {
			assert.False(t, item.IsReturned())
		}
	})

	t.Run("terminal_status_rejects_further_transitions", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.TransitionTo(order.Cancelled, o.CreatedAt().Add(time.Hour)))

		err := o.TransitionTo(order.Pending, o.CreatedAt().Add(2*time.Hour))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, 2, o.Version())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("records_reason_in_note", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.Cancel("customer changed mind", o.CreatedAt().Add(time.Hour)))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Contains(t, o.Note(), "cancelled: customer changed mind")
	})

	t.Run("keeps_existing_note", func(t *testing.T) {
		now := time.Now()
		id := kernel.NewUUID()
		number, _ := order.NewNumber(now, 2)
		o, err := order.NewOrder(id, number, "user-1", testItems(t, id), testTotals(t), testAddress(t), nil, "gift wrap", now)
		require.NoError(t, err)

		require.NoError(t, o.Cancel("out of stock", now.Add(time.Hour)))

		assert.Contains(t, o.Note(), "gift wrap")
		assert.Contains(t, o.Note(), "cancelled: out of stock")
	})

	t.Run("fails_from_shipped", func(t *testing.T) {
		o := testOrder(t)
		now := o.CreatedAt()
		for _, next := range []order.Status{order.Paid, order.Confirmed, order.Processing, order.Shipped} {
			now = now.Add(time.Hour)
			require.NoError(t, o.TransitionTo(next, now))
		}

		err := o.Cancel("too late", now.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round_trips_the_aggregate", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.TransitionTo(order.Paid, o.CreatedAt().Add(time.Hour)))

		restored, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:             o.ID(),
			Number:         o.Number(),
			OwnerID:        o.OwnerID(),
			Status:         o.Status(),
			Items:          o.Items(),
			Totals:         o.Totals(),
			Address:        o.Address(),
			PromotionCodes: o.PromotionCodes(),
			Note:           o.Note(),
			Version:        o.Version(),
			CreatedAt:      o.CreatedAt(),
			UpdatedAt:      o.UpdatedAt(),
			PaidAt:         o.PaidAt(),
		})

		require.NoError(t, err)
		assert.True(t, o.IsEqual(restored))
		assert.Equal(t, order.Paid, restored.Status())
		assert.Equal(t, o.Version(), restored.Version())
		assert.Equal(t, o.PaidAt(), restored.PaidAt())
	})

	t.Run("rejects_non_positive_version", func(t *testing.T) {
		o := testOrder(t)

		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:        o.ID(),
			Number:    o.Number(),
			OwnerID:   o.OwnerID(),
			Status:    o.Status(),
			Items:     o.Items(),
			Totals:    o.Totals(),
			Address:   o.Address(),
			Version:   0,
			CreatedAt: o.CreatedAt(),
			UpdatedAt: o.UpdatedAt(),
		})

		require.Error(t, err)
	})
}

func TestNewItem(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("derives_final_amount", func(t *testing.T) {
		item, err := order.NewItem(
			kernel.NewUUID(), orderID,
			"P1", "V1", "Widget", "SKU-1", "",
			3, kernel.NewMoneyFromInt(500), kernel.NewMoneyFromInt(100),
		)

		require.NoError(t, err)
		assert.True(t, item.FinalAmount().IsEqual(kernel.NewMoneyFromInt(1400)))
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		_, err := order.NewItem(
			kernel.NewUUID(), orderID,
			"P1", "", "Widget", "SKU-1", "",
			0, kernel.NewMoneyFromInt(500), kernel.ZeroMoney(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_unit_price", func(t *testing.T) {
		_, err := order.NewItem(
			kernel.NewUUID(), orderID,
			"P1", "", "Widget", "SKU-1", "",
			1, kernel.NewMoneyFromInt(-10), kernel.ZeroMoney(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_product", func(t *testing.T) {
		_, err := order.NewItem(
			kernel.NewUUID(), orderID,
			"", "", "Widget", "SKU-1", "",
			1, kernel.NewMoneyFromInt(10), kernel.ZeroMoney(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestTotals(t *testing.T) {
	t.Run("derives_total", func(t *testing.T) {
		totals, err := order.NewTotals(
			kernel.NewMoneyFromInt(1200),
			kernel.NewMoneyFromInt(100),
			kernel.NewMoneyFromInt(60),
			kernel.NewMoneyFromInt(50),
		)

		require.NoError(t, err)
		assert.True(t, totals.TotalAmount().IsEqual(kernel.NewMoneyFromInt(1310)))
	})

	t.Run("rejects_negative_components", func(t *testing.T) {
		_, err := order.NewTotals(
			kernel.NewMoneyFromInt(-1),
			kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_discount_exceeding_value", func(t *testing.T) {
		_, err := order.NewTotals(
			kernel.NewMoneyFromInt(100),
			kernel.ZeroMoney(), kernel.ZeroMoney(),
			kernel.NewMoneyFromInt(200),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("restore_rejects_non_reconciling_total", func(t *testing.T) {
		_, err := order.RestoreTotals(
			kernel.NewMoneyFromInt(1200),
			kernel.ZeroMoney(),
			kernel.NewMoneyFromInt(60),
			kernel.ZeroMoney(),
			kernel.NewMoneyFromInt(9999),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
