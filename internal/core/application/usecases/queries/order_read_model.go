// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the aggregates and read optimized models straight from the
// database.
package queries

import (
	"context"
	"database/sql"
	"time"

	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItemResponse is one purchased line of an order read model.
type OrderItemResponse struct {
	ID             kernel.UUID
	ProductID      string
	VariantID      string
	ProductName    string
	ProductSKU     string
	ProductImage   string
	Quantity       int
	UnitPrice      kernel.Money
	DiscountAmount kernel.Money
	FinalAmount    kernel.Money
	IsShipped      bool
	IsReturned     bool
}

// OrderResponse is the full order read model returned by the single-order
// queries.
type OrderResponse struct {
	ID             kernel.UUID
	Number         string
	OwnerID        string
	Status         string
	Items          []OrderItemResponse
	Subtotal       kernel.Money
	ShippingFee    kernel.Money
	TaxAmount      kernel.Money
	DiscountAmount kernel.Money
	TotalAmount    kernel.Money
	Recipient      string
	Phone          string
	AddressLine1   string
	AddressLine2   string
	City           string
	PostalCode     string
	Country        string
	PromotionCodes []string
	Note           string
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
	PaidAt         *time.Time
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
	CancelledAt    *time.Time
}

const orderSelectColumns = `
	id,
	number,
	owner_id,
	status,
	subtotal,
	shipping_fee,
	tax_amount,
	discount_amount,
	total_amount,
	recipient,
	phone,
	address_line1,
	address_line2,
	city,
	postal_code,
	country,
	promotion_codes,
	note,
	version,
	created_at,
	updated_at,
	paid_at,
	shipped_at,
	delivered_at,
	cancelled_at
`

// scanOrderRow maps one row of orderSelectColumns into the read model.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp                                        OrderResponse
		id                                          uuid.UUID
		subtotal, shipping, tax, discount, total    decimal.Decimal
		promotionCodes                              pq.StringArray
		paidAt, shippedAt, deliveredAt, cancelledAt sql.NullTime
	)

	err := rows.Scan(
		&id,
		&resp.Number,
		&resp.OwnerID,
		&resp.Status,
		&subtotal,
		&shipping,
		&tax,
		&discount,
		&total,
		&resp.Recipient,
		&resp.Phone,
		&resp.AddressLine1,
		&resp.AddressLine2,
		&resp.City,
		&resp.PostalCode,
		&resp.Country,
		&promotionCodes,
		&resp.Note,
		&resp.Version,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&paidAt,
		&shippedAt,
		&deliveredAt,
		&cancelledAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp.ID = orderID
	resp.Subtotal = kernel.NewMoneyFromDecimal(subtotal)
	resp.ShippingFee = kernel.NewMoneyFromDecimal(shipping)
	resp.TaxAmount = kernel.NewMoneyFromDecimal(tax)
	resp.DiscountAmount = kernel.NewMoneyFromDecimal(discount)
	resp.TotalAmount = kernel.NewMoneyFromDecimal(total)
	resp.PromotionCodes = promotionCodes
	resp.PaidAt = nullableTime(paidAt)
	resp.ShippedAt = nullableTime(shippedAt)
	resp.DeliveredAt = nullableTime(deliveredAt)
	resp.CancelledAt = nullableTime(cancelledAt)
	return resp, nil
}

// loadOrderItems reads the item lines of one order, ordered by product name
// for stable display.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			variant_id,
			product_name,
			product_sku,
			product_image,
			quantity,
			unit_price,
			discount_amount,
			final_amount,
			is_shipped,
			is_returned
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_name, product_id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item                       OrderItemResponse
			id                         uuid.UUID
			unitPrice, discount, final decimal.Decimal
		)

		err = rows.Scan(
			&id,
			&item.ProductID,
			&item.VariantID,
			&item.ProductName,
			&item.ProductSKU,
			&item.ProductImage,
			&item.Quantity,
			&unitPrice,
			&discount,
			&final,
			&item.IsShipped,
			&item.IsReturned,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID
		item.UnitPrice = kernel.NewMoneyFromDecimal(unitPrice)
		item.DiscountAmount = kernel.NewMoneyFromDecimal(discount)
		item.FinalAmount = kernel.NewMoneyFromDecimal(final)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
