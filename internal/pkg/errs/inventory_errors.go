package errs

import (
	"errors"
	"fmt"
)

// ErrNegativeStock is the sentinel error for sales that would drive stock below zero.
var ErrNegativeStock = errors.New("negative stock")

// NegativeStockError indicates that applying a quantity change to the current
// stock of a (product, variant) key would make it negative.
type NegativeStockError struct {
	ProductID string
	VariantID string
	Available int
	Change    int
}

// NewNegativeStockError creates a NegativeStockError for the rejected change.
func NewNegativeStockError(productID, variantID string, available, change int) *NegativeStockError {
	return &NegativeStockError{
		ProductID: productID,
		VariantID: variantID,
		Available: available,
		Change:    change,
	}
}

func (e *NegativeStockError) Error() string {
	key := e.ProductID
	if e.VariantID != "" {
		key = fmt.Sprintf("%s/%s", e.ProductID, e.VariantID)
	}
	return sanitize(fmt.Sprintf("%s: %s has %d, change is %d",
		ErrNegativeStock, key, e.Available, e.Change))
}

func (e *NegativeStockError) Unwrap() error {
	return ErrNegativeStock
}
