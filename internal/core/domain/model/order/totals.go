package order

import (
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// Totals is the reconciled money breakdown of an order. The total always
// equals subtotal + shipping + tax - discount; the invariant is established
// at construction and re-checked when restoring from persistence so that a
// corrupted row can never masquerade as a valid order.
type Totals struct {
	subtotal       kernel.Money
	shippingFee    kernel.Money
	taxAmount      kernel.Money
	discountAmount kernel.Money
	totalAmount    kernel.Money
}

// NewTotals builds the totals breakdown, deriving the total amount.
// Components must be non-negative; the derived total must not be negative
// either (a discount can never exceed the goods value).
func NewTotals(subtotal, shippingFee, taxAmount, discountAmount kernel.Money) (Totals, error) {
	for name, amount := range map[string]kernel.Money{
		"subtotal":       subtotal,
		"shippingFee":    shippingFee,
		"taxAmount":      taxAmount,
		"discountAmount": discountAmount,
	} {
		if amount.IsNegative() {
			return Totals{}, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", amount))
		}
	}

	total := subtotal.Add(shippingFee).Add(taxAmount).Sub(discountAmount)
	if total.IsNegative() {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("discount %s exceeds subtotal, shipping and tax", discountAmount),
		)
	}

	return Totals{
		subtotal:       subtotal,
		shippingFee:    shippingFee,
		taxAmount:      taxAmount,
		discountAmount: discountAmount,
		totalAmount:    total,
	}, nil
}

// RestoreTotals reconstructs totals from persistence, verifying that the
// stored total still reconciles with its components.
func RestoreTotals(subtotal, shippingFee, taxAmount, discountAmount, totalAmount kernel.Money) (Totals, error) {
	totals, err := NewTotals(subtotal, shippingFee, taxAmount, discountAmount)
	if err != nil {
		return Totals{}, err
	}

	if !totals.totalAmount.IsEqual(totalAmount) {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("stored total %s does not reconcile to %s", totalAmount, totals.totalAmount),
		)
	}

	return totals, nil
}

// Subtotal returns the sum of line item amounts.
func (t Totals) Subtotal() kernel.Money { return t.subtotal }

// ShippingFee returns the shipping fee.
func (t Totals) ShippingFee() kernel.Money { return t.shippingFee }

// TaxAmount returns the tax amount.
func (t Totals) TaxAmount() kernel.Money { return t.taxAmount }

// DiscountAmount returns the applied discount.
func (t Totals) DiscountAmount() kernel.Money { return t.discountAmount }

// TotalAmount returns subtotal + shipping + tax - discount.
func (t Totals) TotalAmount() kernel.Money { return t.totalAmount }
