package notification

import (
	"fmt"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
)

// Type classifies a notification.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// TypeOrderCreated is sent when an order enters pending.
	TypeOrderCreated

	// TypeOrderPaid is sent when payment is authorized.
	TypeOrderPaid

	// TypeOrderConfirmed is sent when the merchant accepts the order.
	TypeOrderConfirmed

	// TypeOrderShipped is sent when the order leaves the warehouse.
	TypeOrderShipped

	// TypeOrderDelivered is sent when delivery is confirmed.
	TypeOrderDelivered

	// TypeOrderCompleted is sent when the order reaches its terminal
	// happy-path status.
	TypeOrderCompleted

	// TypeOrderCancelled is sent when the order is cancelled.
	TypeOrderCancelled

	// TypeOrderRefunded is sent when a refund completes.
	TypeOrderRefunded

	// TypePromotion carries marketing content unrelated to an order.
	TypePromotion

	// TypeSystem carries operational announcements.
	TypeSystem
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:        "unknown",
		TypeOrderCreated:   "order_created",
		TypeOrderPaid:      "order_paid",
		TypeOrderConfirmed: "order_confirmed",
		TypeOrderShipped:   "order_shipped",
		TypeOrderDelivered: "order_delivered",
		TypeOrderCompleted: "order_completed",
		TypeOrderCancelled: "order_cancelled",
		TypeOrderRefunded:  "order_refunded",
		TypePromotion:      "promotion",
		TypeSystem:         "system",
	}
}

// TypeForOrderStatus maps an order status to its notification type. The
// second return value is false for statuses with no user-facing meaning
// (draft, processing, refunding): those produce no notification at all.
func TypeForOrderStatus(status order.Status) (Type, bool) {
	switch status {
	case order.Pending:
		return TypeOrderCreated, true
	case order.Paid:
		return TypeOrderPaid, true
	case order.Confirmed:
		return TypeOrderConfirmed, true
	case order.Shipped:
		return TypeOrderShipped, true
	case order.Delivered:
		return TypeOrderDelivered, true
	case order.Completed:
		return TypeOrderCompleted, true
	case order.Cancelled:
		return TypeOrderCancelled, true
	case order.Refunded:
		return TypeOrderRefunded, true
	default:
		return TypeUnknown, false
	}
}

// TypeFromString parses a persisted or caller-supplied type name.
func TypeFromString(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if name == s && t != TypeUnknown {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"notificationType",
		fmt.Errorf("%q is not a valid notification type", s),
	)
}

// Validate checks if the value is one of the defined notification types.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"notificationType",
			fmt.Errorf("%d is not a valid notification type", t),
		)
	}
	return nil
}

// String returns the snake_case name of the type. Implements fmt.Stringer.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Priority returns the delivery priority for the type: high for payment and
// delivery events, normal for everything else.
func (t Type) Priority() Priority {
	switch t {
	case TypeOrderPaid, TypeOrderDelivered:
		return PriorityHigh
	default:
		return PriorityNormal
	}
}
