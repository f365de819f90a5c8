package queries

import (
	"errors"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrGetCurrentStockQueryIsNotConstructed = errors.New(
	"GetCurrentStockQuery must be created via NewGetCurrentStockQuery constructor",
)

// GetCurrentStockQuery retrieves the current stock level of one
// (product, variant) key. Stock is the running total of the ledger, read
// off its latest entry.
type GetCurrentStockQuery struct { //nolint:recvcheck //using for validation
	productID string
	variantID string

	guard guard.ConstructorGuard
}

// NewGetCurrentStockQuery creates a stock query for the given key. The
// variant may be empty for products without variants.
func NewGetCurrentStockQuery(productID, variantID string) (GetCurrentStockQuery, error) {
	query := GetCurrentStockQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setProductID(productID); err != nil {
		return GetCurrentStockQuery{}, err
	}
	query.variantID = variantID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentStockQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentStockQueryIsNotConstructed)
}

// ProductID returns the product of the stock key.
func (q GetCurrentStockQuery) ProductID() string { return q.productID }

// VariantID returns the variant of the stock key, empty when none.
func (q GetCurrentStockQuery) VariantID() string { return q.variantID }

func (q *GetCurrentStockQuery) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}

	q.productID = productID
	return nil
}

// GetCurrentStockQueryResponse reports the stock level of one key. A key
// with no ledger entries reports zero.
type GetCurrentStockQueryResponse struct {
	ProductID    string
	VariantID    string
	CurrentStock int
}
