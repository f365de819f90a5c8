// Package payment holds the stub payment provider. Gateway protocol details
// are out of scope; the core only needs an authorization outcome.
package payment

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/ports"

	"github.com/google/uuid"
)

// StubPaymentProvider authorizes every payment. It stands in for a real
// gateway integration behind the PaymentProvider port.
type StubPaymentProvider struct{}

// NewStubPaymentProvider creates the stub provider.
func NewStubPaymentProvider() *StubPaymentProvider {
	return &StubPaymentProvider{}
}

// Authorize approves the payment and fabricates a transaction ID. Context
// cancellation is honored so the handler's timeout semantics still apply.
func (p *StubPaymentProvider) Authorize(
	ctx context.Context,
	_ kernel.UUID,
	_ kernel.Money,
	_ string,
) (ports.PaymentAuthorization, error) {
	if err := ctx.Err(); err != nil {
		return ports.PaymentAuthorization{}, err
	}

	return ports.PaymentAuthorization{
		Success:       true,
		TransactionID: uuid.NewString(),
	}, nil
}
