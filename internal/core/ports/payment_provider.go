package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
)

// PaymentAuthorization is the outcome of an authorization attempt.
type PaymentAuthorization struct {
	Success       bool
	TransactionID string
}

// PaymentProvider is the opaque payment collaborator. Gateway protocol
// details stay behind this interface; the core only sees an authorization
// result.
type PaymentProvider interface {
	// Authorize attempts to authorize the given amount against the payment
	// method. A declined payment is a successful call with Success false;
	// an error means the provider failed or timed out.
	Authorize(ctx context.Context, orderID kernel.UUID, amount kernel.Money, methodID string) (PaymentAuthorization, error)
}
