package notification

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

type template struct {
	title   string
	message string
}

// Message templates per order notification type. The single argument is the
// human-facing order number.
func getOrderTemplates() map[Type]template {
	return map[Type]template{
		TypeOrderCreated:   {"Order placed", "Your order %s has been placed and is awaiting payment."},
		TypeOrderPaid:      {"Payment received", "Payment for order %s was received. We are preparing your items."},
		TypeOrderConfirmed: {"Order confirmed", "Your order %s has been confirmed."},
		TypeOrderShipped:   {"Order shipped", "Your order %s is on its way."},
		TypeOrderDelivered: {"Order delivered", "Your order %s has been delivered."},
		TypeOrderCompleted: {"Order completed", "Your order %s is complete. Thank you for shopping with us."},
		TypeOrderCancelled: {"Order cancelled", "Your order %s has been cancelled."},
		TypeOrderRefunded:  {"Order refunded", "Your refund for order %s has been issued."},
	}
}

// resolveOrderTemplate renders the title and message for an order
// notification type.
func resolveOrderTemplate(t Type, orderNumber string) (title, message string, err error) {
	tpl, ok := getOrderTemplates()[t]
	if !ok {
		return "", "", errs.NewValueIsInvalidErrorWithCause(
			"notificationType",
			fmt.Errorf("%s has no order template", t),
		)
	}
	return tpl.title, fmt.Sprintf(tpl.message, orderNumber), nil
}
