package queries

import (
	"errors"
	"time"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrGetInventoryStatisticsQueryIsNotConstructed = errors.New(
	"GetInventoryStatisticsQuery must be created via NewGetInventoryStatisticsQuery constructor",
)

// GetInventoryStatisticsQuery aggregates the ledger of one
// (product, variant) key into movement totals, optionally bounded to a
// reporting period.
type GetInventoryStatisticsQuery struct { //nolint:recvcheck //using for validation
	productID string
	variantID string
	from      *time.Time
	to        *time.Time

	guard guard.ConstructorGuard
}

// NewGetInventoryStatisticsQuery creates a statistics query for the given
// key. Nil bounds leave the corresponding side of the period open.
func NewGetInventoryStatisticsQuery(productID, variantID string, from, to *time.Time) (GetInventoryStatisticsQuery, error) {
	query := GetInventoryStatisticsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if productID == "" {
		return GetInventoryStatisticsQuery{}, errs.NewValueIsRequiredError("productID")
	}
	query.productID = productID
	query.variantID = variantID
	query.from = from
	query.to = to

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryStatisticsQueryIsNotConstructed)
}

// ProductID returns the product of the stock key.
func (q GetInventoryStatisticsQuery) ProductID() string { return q.productID }

// VariantID returns the variant of the stock key, empty when none.
func (q GetInventoryStatisticsQuery) VariantID() string { return q.variantID }

// From returns the inclusive lower bound of the period, nil when open.
func (q GetInventoryStatisticsQuery) From() *time.Time { return q.from }

// To returns the inclusive upper bound of the period, nil when open.
func (q GetInventoryStatisticsQuery) To() *time.Time { return q.to }

// GetInventoryStatisticsQueryResponse summarizes one key's ledger. Sales
// and returns are reported as positive unit counts; adjustments as the net
// signed change.
type GetInventoryStatisticsQueryResponse struct {
	ProductID         string
	VariantID         string
	CurrentStock      int
	TotalSales        int
	TotalReturns      int
	TotalAdjustments  int
	TransactionCount  int64
	LastTransactionAt *time.Time
}
