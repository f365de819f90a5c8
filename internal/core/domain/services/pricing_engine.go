package services

import (
	"fmt"

	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	defaultTaxRateStr            = "0.05"
	defaultFreeShippingThreshold = 1000
	defaultShippingFee           = 100
)

// PricingEngine computes the money breakdown of an order from a cart's line
// items. It is a pure function of its inputs: no I/O, no hidden state, and
// pricing the same items twice always yields identical totals.
//
// Business rules:
//   - Subtotal is the sum of unitPrice x quantity over all items
//   - Tax is the subtotal multiplied by the tax rate, rounded half-up to
//     the smallest currency unit in a single rounding step
//   - Shipping is free once the subtotal reaches the threshold, a flat fee
//     below it
//   - Total = Subtotal + Tax + Shipping - Discount
type PricingEngine struct {
	taxRate               decimal.Decimal
	freeShippingThreshold kernel.Money
	shippingFee           kernel.Money

	isConstructed bool
}

// NewPricingEngine creates a pricing engine with the standard rules: 5% tax,
// free shipping from 1000 currency units, flat fee of 100 below that.
func NewPricingEngine() PricingEngine {
	engine, err := NewPricingEngineWithRules(
		decimal.RequireFromString(defaultTaxRateStr),
		kernel.NewMoneyFromInt(defaultFreeShippingThreshold),
		kernel.NewMoneyFromInt(defaultShippingFee),
	)
	if err != nil {
		panic(err)
	}
	return engine
}

// NewPricingEngineWithRules creates a pricing engine with custom rules.
func NewPricingEngineWithRules(
	taxRate decimal.Decimal,
	freeShippingThreshold kernel.Money,
	shippingFee kernel.Money,
) (PricingEngine, error) {
	if taxRate.IsNegative() {
		return PricingEngine{}, errs.NewValueIsInvalidErrorWithCause(
			"taxRate",
			fmt.Errorf("%s is negative", taxRate),
		)
	}
	if freeShippingThreshold.IsNegative() {
		return PricingEngine{}, errs.NewValueIsInvalidErrorWithCause(
			"freeShippingThreshold",
			fmt.Errorf("%s is negative", freeShippingThreshold),
		)
	}
	if shippingFee.IsNegative() {
		return PricingEngine{}, errs.NewValueIsInvalidErrorWithCause(
			"shippingFee",
			fmt.Errorf("%s is negative", shippingFee),
		)
	}

	return PricingEngine{
		taxRate:               taxRate,
		freeShippingThreshold: freeShippingThreshold,
		shippingFee:           shippingFee,
		isConstructed:         true,
	}, nil
}

// Validate ensures the engine was created through a constructor.
func (p PricingEngine) Validate() error {
	if !p.isConstructed {
		return errs.NewValueIsRequiredError("pricingEngine")
	}
	return nil
}

// Price computes the totals for the given line items and discount.
//
// Every item must carry a positive integer quantity and a non-negative unit
// price; a violation is reported as a validation error, never clamped.
func (p PricingEngine) Price(items []*cart.LineItem, discount kernel.Money) (order.Totals, error) {
	if err := p.Validate(); err != nil {
		return order.Totals{}, err
	}
	if len(items) == 0 {
		return order.Totals{}, errs.NewValueIsRequiredError("items")
	}
	if discount.IsNegative() {
		return order.Totals{}, errs.NewValueIsInvalidErrorWithCause(
			"discount",
			fmt.Errorf("%s is negative", discount),
		)
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return order.Totals{}, err
		}
		if item.Quantity() < 1 {
			return order.Totals{}, errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("%d is not a positive quantity", item.Quantity()),
			)
		}
		if item.UnitPrice().IsNegative() {
			return order.Totals{}, errs.NewValueIsInvalidErrorWithCause(
				"unitPrice",
				fmt.Errorf("%s is negative", item.UnitPrice()),
			)
		}
		subtotal = subtotal.Add(item.Subtotal())
	}

	tax := subtotal.MulRounded(p.taxRate)

	shipping := p.shippingFee
	if subtotal.GreaterOrEqual(p.freeShippingThreshold) {
		shipping = kernel.ZeroMoney()
	}

	return order.NewTotals(subtotal, shipping, tax, discount)
}
