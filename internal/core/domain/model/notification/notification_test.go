package notification_test

import (
	"testing"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeForOrderStatus(t *testing.T) {
	t.Run("maps_user_facing_statuses", func(t *testing.T) {
		cases := map[order.Status]notification.Type{
			order.Pending:   notification.TypeOrderCreated,
			order.Paid:      notification.TypeOrderPaid,
			order.Confirmed: notification.TypeOrderConfirmed,
			order.Shipped:   notification.TypeOrderShipped,
			order.Delivered: notification.TypeOrderDelivered,
			order.Completed: notification.TypeOrderCompleted,
			order.Cancelled: notification.TypeOrderCancelled,
			order.Refunded:  notification.TypeOrderRefunded,
		}

		for status, want := range cases {
			got, ok := notification.TypeForOrderStatus(status)
			require.True(t, ok, "status %s must map to a type", status)
			assert.Equal(t, want, got)
		}
	})

	t.Run("silent_statuses_produce_no_type", func(t *testing.T) {
		for _, status := range []order.Status{order.Draft, order.Processing, order.Refunding} {
			_, ok := notification.TypeForOrderStatus(status)
			assert.False(t, ok, "status %s must be silent", status)
		}
	})
}

func TestType_Priority(t *testing.T) {
	assert.Equal(t, notification.PriorityHigh, notification.TypeOrderPaid.Priority())
	assert.Equal(t, notification.PriorityHigh, notification.TypeOrderDelivered.Priority())

	assert.Equal(t, notification.PriorityNormal, notification.TypeOrderCreated.Priority())
	assert.Equal(t, notification.PriorityNormal, notification.TypeOrderShipped.Priority())
	assert.Equal(t, notification.PriorityNormal, notification.TypeOrderCancelled.Priority())
}

func TestNewOrderNotification(t *testing.T) {
	now := time.Now()

	t.Run("resolves_template", func(t *testing.T) {
		n, err := notification.NewOrderNotification(
			kernel.NewUUID(), "user-1",
			notification.TypeOrderShipped, "ORD-20250831-00042", "/orders/42", now,
		)

		require.NoError(t, err)
		assert.Equal(t, "Order shipped", n.Title())
		assert.Equal(t, "Your order ORD-20250831-00042 is on its way.", n.Message())
		assert.Equal(t, notification.PriorityNormal, n.Priority())
		assert.Equal(t, "/orders/42", n.ActionURL())
		assert.False(t, n.IsRead())
	})

	t.Run("paid_event_is_high_priority", func(t *testing.T) {
		n, err := notification.NewOrderNotification(
			kernel.NewUUID(), "user-1",
			notification.TypeOrderPaid, "ORD-20250831-00001", "", now,
		)

		require.NoError(t, err)
		assert.Equal(t, notification.PriorityHigh, n.Priority())
	})

	t.Run("rejects_non_order_types", func(t *testing.T) {
		_, err := notification.NewOrderNotification(
			kernel.NewUUID(), "user-1",
			notification.TypeSystem, "ORD-20250831-00001", "", now,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires_order_number", func(t *testing.T) {
		_, err := notification.NewOrderNotification(
			kernel.NewUUID(), "user-1",
			notification.TypeOrderPaid, "", "", now,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNotification_MarkRead(t *testing.T) {
	now := time.Now()
	n, err := notification.NewNotification(
		kernel.NewUUID(), "user-1",
		notification.TypeSystem, "Maintenance", "Scheduled maintenance tonight.", "", now,
	)
	require.NoError(t, err)

	t.Run("stamps_read_at", func(t *testing.T) {
		readTime := now.Add(time.Hour)

		require.NoError(t, n.MarkRead(readTime))

		assert.True(t, n.IsRead())
		require.NotNil(t, n.ReadAt())
		assert.Equal(t, readTime, *n.ReadAt())
	})

	t.Run("is_idempotent", func(t *testing.T) {
		first := *n.ReadAt()

		require.NoError(t, n.MarkRead(now.Add(2*time.Hour)))

		assert.Equal(t, first, *n.ReadAt())
	})
}

func TestRestoreNotification(t *testing.T) {
	now := time.Now()
	readAt := now.Add(time.Minute)

	n, err := notification.RestoreNotification(
		kernel.NewUUID(), "user-1",
		notification.TypeOrderDelivered, notification.PriorityHigh,
		"Order delivered", "Your order ORD-20250831-00007 has been delivered.", "/orders/7",
		true, &readAt, now,
	)

	require.NoError(t, err)
	assert.True(t, n.IsRead())
	assert.Equal(t, notification.PriorityHigh, n.Priority())
	assert.Equal(t, readAt, *n.ReadAt())
}

func TestNotification_Validate(t *testing.T) {
	var n notification.Notification

	assert.Equal(t, notification.ErrNotificationIsNotConstructed, n.Validate())
}
