package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a user's cart with its line items.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	ownerID string

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a cart query for the owner.
func NewGetCartQuery(ownerID string) (GetCartQuery, error) {
	query := GetCartQuery{
		guard: guard.NewConstructorGuard(),
	}

	if ownerID == "" {
		return GetCartQuery{}, errs.NewValueIsRequiredError("ownerID")
	}
	query.ownerID = ownerID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// OwnerID returns the cart owner.
func (q GetCartQuery) OwnerID() string { return q.ownerID }

// CartLineItemResponse is one line of the cart read model.
type CartLineItemResponse struct {
	ProductID    string
	VariantID    string
	ProductName  string
	ProductSKU   string
	ProductImage string
	Quantity     int
	UnitPrice    kernel.Money
	Subtotal     kernel.Money
}

// GetCartQueryResponse is the cart read model. A user without a cart gets
// an empty one rather than an error.
type GetCartQueryResponse struct {
	ID            kernel.UUID
	OwnerID       string
	Items         []CartLineItemResponse
	TotalQuantity int
	Subtotal      kernel.Money
	UpdatedAt     time.Time
}
