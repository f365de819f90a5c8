package queries

import (
	"context"

	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads a user's cart with its line items.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query. A user without a persisted cart gets an empty
// response with a zero cart ID.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	resp := GetCartQueryResponse{
		OwnerID:  query.OwnerID(),
		Items:    make([]CartLineItemResponse, 0),
		Subtotal: kernel.ZeroMoney(),
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT id, updated_at FROM carts WHERE owner_id = ?`,
		query.OwnerID(),
	).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetCartQueryResponse{}, err
		}
		return resp, nil
	}

	var cartID uuid.UUID
	if err = rows.Scan(&cartID, &resp.UpdatedAt); err != nil {
		return GetCartQueryResponse{}, err
	}
	rows.Close()

	id, err := kernel.UUIDFromBytes(cartID[:])
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	resp.ID = id

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			variant_id,
			product_name,
			product_sku,
			product_image,
			quantity,
			unit_price
		FROM cart_items
		WHERE cart_id = ?
		ORDER BY product_name, product_id
	`, id.String()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			item      CartLineItemResponse
			unitPrice decimal.Decimal
		)

		err = itemRows.Scan(
			&item.ProductID,
			&item.VariantID,
			&item.ProductName,
			&item.ProductSKU,
			&item.ProductImage,
			&item.Quantity,
			&unitPrice,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		item.UnitPrice = kernel.NewMoneyFromDecimal(unitPrice)
		item.Subtotal = item.UnitPrice.MulInt(item.Quantity)
		resp.Items = append(resp.Items, item)
		resp.TotalQuantity += item.Quantity
		resp.Subtotal = resp.Subtotal.Add(item.Subtotal)
	}

	if err = itemRows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return resp, nil
}
