package inventory

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrTransactionIsNotConstructed is returned when a Transaction instance
	// was not created through the NewTransaction factory method.
	ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction constructor")
)

// Transaction is one immutable entry of the stock ledger. It records the
// signed quantity change together with the stock level before and after it,
// so the whole history of a (product, variant) key replays to its current
// stock.
type Transaction struct {
	id             kernel.UUID
	productID      string
	variantID      string
	txType         TransactionType
	quantityChange int
	beforeQuantity int
	afterQuantity  int
	reference      Reference
	note           string
	createdAt      time.Time

	isConstructed bool
}

// NewTransactionParams carries the input for appending a ledger entry.
// BeforeQuantity must be the afterQuantity of the key's latest transaction
// (zero for a fresh key); the repository linearizes appends per key so the
// value is never stale.
type NewTransactionParams struct {
	ID             kernel.UUID
	ProductID      string
	VariantID      string
	Type           TransactionType
	QuantityChange int
	BeforeQuantity int
	Reference      Reference
	Note           string

	// AllowNegative permits a return or adjustment to drive stock below
	// zero. Sales are never allowed to, regardless of this flag.
	AllowNegative bool
}

// NewTransaction validates and builds a ledger entry, deriving afterQuantity.
//
// A sale must carry a negative quantity change and a return a positive one.
// A resulting negative stock level fails with a NegativeStockError unless the
// type permits it and AllowNegative is set.
func NewTransaction(params NewTransactionParams, now time.Time) (*Transaction, error) {
	if err := params.ID.Validate(); err != nil {
		return nil, err
	}
	if params.ProductID == "" {
		return nil, errs.NewValueIsRequiredError("productID")
	}
	if err := params.Type.Validate(); err != nil {
		return nil, err
	}
	if params.Reference.IsZero() {
		return nil, errs.NewValueIsRequiredError("reference")
	}

	if params.QuantityChange == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantityChange",
			errors.New("quantity change must not be zero"),
		)
	}
	if params.Type == TypeSale && params.QuantityChange > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantityChange",
			fmt.Errorf("a sale must deduct stock, got %+d", params.QuantityChange),
		)
	}
	if params.Type == TypeReturn && params.QuantityChange < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantityChange",
			fmt.Errorf("a return must restore stock, got %+d", params.QuantityChange),
		)
	}

	after := params.BeforeQuantity + params.QuantityChange
	if after < 0 {
		if params.Type == TypeSale || !params.AllowNegative {
			return nil, errs.NewNegativeStockError(
				params.ProductID, params.VariantID,
				params.BeforeQuantity, params.QuantityChange,
			)
		}
	}

	return &Transaction{
		id:             params.ID,
		productID:      params.ProductID,
		variantID:      params.VariantID,
		txType:         params.Type,
		quantityChange: params.QuantityChange,
		beforeQuantity: params.BeforeQuantity,
		afterQuantity:  after,
		reference:      params.Reference,
		note:           params.Note,
		createdAt:      now,
		isConstructed:  true,
	}, nil
}

// RestoreTransaction reconstructs a ledger entry from persistence, verifying
// that the stored quantities still chain correctly.
func RestoreTransaction(
	id kernel.UUID,
	productID string,
	variantID string,
	txType TransactionType,
	quantityChange int,
	beforeQuantity int,
	afterQuantity int,
	reference Reference,
	note string,
	createdAt time.Time,
) (*Transaction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("productID")
	}
	if err := txType.Validate(); err != nil {
		return nil, err
	}
	if beforeQuantity+quantityChange != afterQuantity {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"afterQuantity",
			fmt.Errorf("stored %d does not equal %d%+d", afterQuantity, beforeQuantity, quantityChange),
		)
	}

	return &Transaction{
		id:             id,
		productID:      productID,
		variantID:      variantID,
		txType:         txType,
		quantityChange: quantityChange,
		beforeQuantity: beforeQuantity,
		afterQuantity:  afterQuantity,
		reference:      reference,
		note:           note,
		createdAt:      createdAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Transaction was created through a constructor.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// IsEqual compares two transactions by their unique identifiers.
func (t *Transaction) IsEqual(other *Transaction) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() kernel.UUID { return t.id }

// ProductID returns the product the transaction affects.
func (t *Transaction) ProductID() string { return t.productID }

// VariantID returns the affected variant, empty for variant-less products.
func (t *Transaction) VariantID() string { return t.variantID }

// Type returns the transaction type.
func (t *Transaction) Type() TransactionType { return t.txType }

// QuantityChange returns the signed stock delta.
func (t *Transaction) QuantityChange() int { return t.quantityChange }

// BeforeQuantity returns the stock level prior to this transaction.
func (t *Transaction) BeforeQuantity() int { return t.beforeQuantity }

// AfterQuantity returns the stock level after this transaction.
func (t *Transaction) AfterQuantity() int { return t.afterQuantity }

// Reference returns the originator of the transaction.
func (t *Transaction) Reference() Reference { return t.reference }

// Note returns the free-form annotation.
func (t *Transaction) Note() string { return t.note }

// CreatedAt returns the append time.
func (t *Transaction) CreatedAt() time.Time { return t.createdAt }
